// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import (
	"time"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/api"
)

// RegisterRequest содержит данные для регистрации.
type RegisterRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// ToInput преобразует запрос во входные данные сценария регистрации.
func (r *RegisterRequest) ToInput() api.RegisterInput {
	return api.RegisterInput{
		Username:        r.Username,
		Password:        r.Password,
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		ProfileImageURL: r.ProfileImageURL,
	}
}

// LoginRequest содержит данные для входа.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User представляет пользователя без хэша пароля.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           *string   `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AuthResponse возвращается после регистрации и входа.
type AuthResponse struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewUser строит представление пользователя.
func NewUser(u *entities.User) *User {
	return &User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// NewAuthResponse строит ответ с пользователем и токеном сессии.
func NewAuthResponse(result *api.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:      NewUser(result.User),
		Token:     result.Session.Token,
		ExpiresAt: result.Session.ExpiresAt,
	}
}
