// Package services содержит реализации сервисов паролей и токенов.
package services

import (
	"time"

	"devjournal/internal/journal/ports/services"
)

// ServiceFactory создает сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(sessionSecret string, bcryptCost int, now func() time.Time) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewSessionTokenJWT(sessionSecret, now),
	}
}

// PasswordService возвращает сервис паролей.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис токенов.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
