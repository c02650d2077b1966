package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/domain/services"
	"devjournal/internal/journal/ports/api"
	"devjournal/internal/journal/ports/repositories"
	svc "devjournal/internal/journal/ports/services"
	"devjournal/pkg/logger"
)

const (
	methodSessionLogin    = "SessionAuthenticator.Login"
	methodSessionValidate = "SessionAuthenticator.Validate"
	methodSessionDestroy  = "SessionAuthenticator.Destroy"

	msgSessionCreated   = "session created"
	msgSessionDestroyed = "session destroyed"
	msgSessionRejected  = "session token rejected"
	msgSessionMissing   = "session not found or expired"
	msgSessionMismatch  = "session bound to another user"

	msgErrSessionLookup = "session lookup failed"
	msgErrSessionDelete = "failed to delete session"

	errCtxSessionID    = "generating session id"
	errCtxStoreSession = "storing session"
	errCtxSignSession  = "signing session token"

	// DefaultSessionTTL - срок жизни сессии по умолчанию.
	DefaultSessionTTL = 7 * 24 * time.Hour

	sessionIDBytes = 32
)

// SessionAuthenticatorImpl выдает подписанные токены, привязанные к записи в хранилище сессий.
type SessionAuthenticatorImpl struct {
	sessions repositories.SessionRepository
	tokens   svc.TokenService
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionAuthenticator создает аутентификатор сессий.
func NewSessionAuthenticator(
	sessions repositories.SessionRepository,
	tokens svc.TokenService,
	ttl time.Duration,
	now func() time.Time,
) api.SessionAuthenticator {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &SessionAuthenticatorImpl{sessions: sessions, tokens: tokens, ttl: ttl, now: now}
}

// Login создает активную сессию для пользователя.
func (a *SessionAuthenticatorImpl) Login(ctx context.Context, userID string) (*entities.IssuedSession, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSessionLogin), zap.String("user_id", userID))

	sid, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", errCtxSessionID, services.ErrGeneratingToken, err)
	}

	now := a.now()
	session := &entities.Session{
		ID:        sid,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.ttl),
	}

	token, err := a.tokens.Issue(ctx, services.TokenClaims{
		SessionID: sid,
		UserID:    userID,
		IssuedAt:  session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSignSession, err)
	}

	if err := a.sessions.Store(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxStoreSession, err)
	}

	log.Debug(ctx, msgSessionCreated, zap.Time("expires_at", session.ExpiresAt))
	return &entities.IssuedSession{Token: token, UserID: userID, ExpiresAt: session.ExpiresAt}, nil
}

// Validate возвращает пользователя активной сессии. Ошибки хранилища
// логируются и трактуются как отсутствие сессии.
func (a *SessionAuthenticatorImpl) Validate(ctx context.Context, token string) (string, bool) {
	log := logger.Log(ctx).With(zap.String("method", methodSessionValidate))

	if token == "" {
		return "", false
	}

	claims, err := a.tokens.Parse(ctx, token)
	if err != nil {
		log.Debug(ctx, msgSessionRejected, zap.Error(err))
		return "", false
	}

	session, ok, err := a.sessions.Find(ctx, claims.SessionID)
	if err != nil {
		log.Error(ctx, msgErrSessionLookup, zap.Error(err))
		return "", false
	}
	if !ok || session.Expired(a.now()) {
		log.Debug(ctx, msgSessionMissing)
		return "", false
	}
	if session.UserID != claims.UserID {
		log.Warn(ctx, msgSessionMismatch)
		return "", false
	}

	return session.UserID, true
}

// Destroy завершает сессию. Неизвестный или уже завершенный токен игнорируется.
func (a *SessionAuthenticatorImpl) Destroy(ctx context.Context, token string) {
	log := logger.Log(ctx).With(zap.String("method", methodSessionDestroy))

	if token == "" {
		return
	}
	claims, err := a.tokens.Parse(ctx, token)
	if err != nil {
		log.Debug(ctx, msgSessionRejected, zap.Error(err))
		return
	}
	if err := a.sessions.Delete(ctx, claims.SessionID); err != nil {
		log.Error(ctx, msgErrSessionDelete, zap.Error(err))
		return
	}
	log.Debug(ctx, msgSessionDestroyed, zap.String("user_id", claims.UserID))
}

// Authorize пропускает запрос только с действующей сессией.
func (a *SessionAuthenticatorImpl) Authorize(ctx context.Context, token string) (string, error) {
	userID, ok := a.Validate(ctx, token)
	if !ok {
		return "", services.ErrUnauthenticated
	}
	return userID, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
