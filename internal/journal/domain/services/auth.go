// Package services содержит доменные ошибки и типы аутентификации.
package services

import (
	"errors"
	"time"
)

// MinPasswordLength - минимальная длина пароля при регистрации.
const MinPasswordLength = 6

// Ошибки аутентификации.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrExpiredToken       = errors.New("session token expired")
	ErrGeneratingToken    = errors.New("failed to generate session token")
)

// TokenClaims - содержимое подписанного токена сессии.
type TokenClaims struct {
	SessionID string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
