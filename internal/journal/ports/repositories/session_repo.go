package repositories

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// SessionRepository хранит активные сессии.
// Find возвращает false для отсутствующих и истекших сессий.
type SessionRepository interface {
	Store(ctx context.Context, session *entities.Session) error
	Find(ctx context.Context, id string) (*entities.Session, bool, error)
	Delete(ctx context.Context, id string) error
	CleanupExpired(ctx context.Context) (int, error)
	Close() error
}
