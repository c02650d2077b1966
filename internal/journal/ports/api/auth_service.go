// Package api описывает сценарии, доступные транспортному слою.
package api

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// RegisterInput содержит данные регистрации с паролем в открытом виде.
type RegisterInput struct {
	Username        string
	Password        string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// AuthResult - пользователь и выданная ему сессия.
type AuthResult struct {
	User    *entities.User
	Session *entities.IssuedSession
}

// SessionAuthenticator выдает и проверяет токены сессий.
type SessionAuthenticator interface {
	Login(ctx context.Context, userID string) (*entities.IssuedSession, error)
	Validate(ctx context.Context, token string) (string, bool)
	Destroy(ctx context.Context, token string)
	Authorize(ctx context.Context, token string) (string, error)
}

// AuthUseCase определяет сценарии учетных записей.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string)
	CurrentUser(ctx context.Context, userID string) (*entities.User, error)
	UpsertUser(ctx context.Context, data entities.UserUpsert) (*entities.User, error)
}
