// Package app содержит сценарии приложения: учетные записи, сессии и контент.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/domain/services"
	"devjournal/internal/journal/ports/api"
	"devjournal/internal/journal/ports/repositories"
	svc "devjournal/internal/journal/ports/services"
	"devjournal/pkg/logger"
)

const (
	methodRegister    = "Register"
	methodLogin       = "Login"
	methodLogout      = "Logout"
	methodCurrentUser = "CurrentUser"
	methodUpsertUser  = "UpsertUser"

	msgStartRegistration   = "starting user registration"
	msgUsernameTaken       = "username already taken"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginUnknownUser    = "login attempt with unknown username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgUserLoggedOut       = "user logged out"
	msgCurrentUserMissing  = "session user no longer exists"
	msgUserUpserted        = "user upserted"

	msgErrHashPassword   = "failed to hash password"
	msgErrCreateUser     = "failed to create user"
	msgErrCreateSession  = "failed to create session"
	msgErrVerifyPassword = "error verifying password"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxValidatingEmail    = "validating email"
	errCtxCheckingUser       = "checking existing user"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxCreatingSession    = "creating session"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxVerifyingPassword  = "verifying password"
	errCtxFindingUser        = "finding user"
	errCtxUpsertingUser      = "upserting user"
)

// AuthUseCaseImpl реализует AuthUseCase.
type AuthUseCaseImpl struct {
	users     repositories.UserRepository
	passwords svc.PasswordService
	sessions  api.SessionAuthenticator
}

// NewAuthUseCase создает сервис учетных записей.
func NewAuthUseCase(
	users repositories.UserRepository,
	passwords svc.PasswordService,
	sessions api.SessionAuthenticator,
) api.AuthUseCase {
	return &AuthUseCaseImpl{users: users, passwords: passwords, sessions: sessions}
}

// Register создает пользователя и сразу открывает для него сессию.
func (a *AuthUseCaseImpl) Register(ctx context.Context, in api.RegisterInput) (*api.AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", in.Username))
	log.Debug(ctx, msgStartRegistration)

	if err := requireText("username", in.Username); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, err)
	}
	if len(in.Password) < services.MinPasswordLength {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword,
			services.NewFieldError("password", reasonPasswordShort))
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}

	if _, exists := a.users.GetByUsername(ctx, in.Username); exists {
		log.Debug(ctx, msgUsernameTaken)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, entities.ErrDuplicateUsername)
	}

	hash, err := a.passwords.Hash(ctx, in.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.users.Create(ctx, entities.UserRegistration{
		Username:        in.Username,
		Password:        hash,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
	})
	if err != nil {
		log.Debug(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	session, err := a.sessions.Login(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("user_id", user.ID))
	return &api.AuthResult{User: user, Session: session}, nil
}

// Login проверяет учетные данные и открывает сессию.
// Неизвестное имя и неверный пароль неразличимы для вызывающего.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*api.AuthResult, error) {
	username = strings.TrimSpace(username)
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if err := firstError(requireText("username", username), requireText("password", password)); err != nil {
		return nil, err
	}

	user, ok := a.users.GetByUsername(ctx, username)
	if !ok {
		log.Debug(ctx, msgLoginUnknownUser)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	valid, err := a.passwords.Verify(ctx, password, user.Password)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	session, err := a.sessions.Login(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("user_id", user.ID))
	return &api.AuthResult{User: user, Session: session}, nil
}

// Logout завершает сессию токена.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) {
	a.sessions.Destroy(ctx, token)
	logger.Log(ctx).Debug(ctx, msgUserLoggedOut, zap.String("method", methodLogout))
}

// CurrentUser возвращает пользователя, уже определенного по сессии.
func (a *AuthUseCaseImpl) CurrentUser(ctx context.Context, userID string) (*entities.User, error) {
	user, ok := a.users.GetByID(ctx, userID)
	if !ok {
		logger.Log(ctx).Warn(ctx, msgCurrentUserMissing,
			zap.String("method", methodCurrentUser), zap.String("user_id", userID))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, entities.ErrNotFound)
	}
	return user, nil
}

// UpsertUser сохраняет пользователя от внешнего провайдера.
// Пароль, если передан, хэшируется перед сохранением.
func (a *AuthUseCaseImpl) UpsertUser(ctx context.Context, data entities.UserUpsert) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpsertUser), zap.String("user_id", data.ID))

	if err := validateEmail(data.Email); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	data.Username = strings.TrimSpace(data.Username)

	if data.Password != "" {
		hash, err := a.passwords.Hash(ctx, data.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		data.Password = hash
	}

	user, err := a.users.Upsert(ctx, data)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyUsername) {
			return nil, fmt.Errorf("%s: %w", errCtxUpsertingUser,
				errors.Join(err, services.NewFieldError("username", reasonRequired)))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpsertingUser, err)
	}

	log.Info(ctx, msgUserUpserted)
	return user, nil
}
