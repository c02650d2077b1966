// Package repositories описывает порты хранилищ.
package repositories

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// UserRepository определяет операции с пользователями.
type UserRepository interface {
	GetAll(ctx context.Context) []*entities.User
	GetByID(ctx context.Context, id string) (*entities.User, bool)
	GetByUsername(ctx context.Context, username string) (*entities.User, bool)
	Create(ctx context.Context, reg entities.UserRegistration) (*entities.User, error)
	Upsert(ctx context.Context, data entities.UserUpsert) (*entities.User, error)
	Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	Delete(ctx context.Context, id string)
}
