package repositories

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// SnapshotStore читает и перезаписывает файл снимка целиком.
type SnapshotStore interface {
	// Load никогда не возвращает ошибку: отсутствующий или поврежденный
	// файл дает пустой набор данных.
	Load(ctx context.Context) *entities.Dataset
	Save(ctx context.Context, data *entities.Dataset) error
}
