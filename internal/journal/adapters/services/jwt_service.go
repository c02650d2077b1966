package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"devjournal/internal/journal/domain/services"
	svc "devjournal/internal/journal/ports/services"
	"devjournal/pkg/logger"
)

const (
	methodIssue = "SessionTokenJWT.Issue"
	methodParse = "SessionTokenJWT.Parse"

	msgTokenIssued  = "session token issued"
	msgTokenParsed  = "session token parsed"
	msgTokenExpired = "session token has expired"
	msgTokenInvalid = "session token rejected"

	errCtxIssuingToken = "issuing session token"
	errCtxParsingToken = "parsing session token"

	tokenIssuer = "devjournal"
)

// ErrInvalidAlgorithm возвращается для токенов, подписанных не HMAC.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims - полезная нагрузка токена сессии.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenJWT подписывает идентификатор сессии секретом сервиса (HS256).
// Сам токен не заменяет хранилище сессий: без записи в нем он недействителен.
type SessionTokenJWT struct {
	secret []byte
	now    func() time.Time
}

// NewSessionTokenJWT создает сервис токенов.
func NewSessionTokenJWT(secret string, now func() time.Time) svc.TokenService {
	if now == nil {
		now = time.Now
	}
	return &SessionTokenJWT{secret: []byte(secret), now: now}
}

// Issue подписывает claims.
func (s *SessionTokenJWT) Issue(ctx context.Context, claims services.TokenClaims) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssue), zap.String("user_id", claims.UserID))

	if len(s.secret) == 0 {
		return "", fmt.Errorf("%s: %w: empty secret", errCtxIssuingToken, services.ErrGeneratingToken)
	}
	if claims.SessionID == "" || claims.UserID == "" {
		return "", fmt.Errorf("%s: %w: missing session or user id", errCtxIssuingToken, services.ErrGeneratingToken)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		SessionID: claims.SessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   claims.UserID,
			ID:        claims.SessionID,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expires_at", claims.ExpiresAt))
	return signed, nil
}

// Parse проверяет подпись и срок действия токена.
func (s *SessionTokenJWT) Parse(ctx context.Context, tokenString string) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodParse))

	if tokenString == "" {
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrExpiredToken)
		}
		log.Debug(ctx, msgTokenInvalid, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.Subject == "" {
		log.Debug(ctx, msgTokenInvalid)
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrInvalidToken)
	}

	out := &services.TokenClaims{
		SessionID: claims.SessionID,
		UserID:    claims.Subject,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.UTC()
	}

	log.Debug(ctx, msgTokenParsed, zap.String("user_id", out.UserID))
	return out, nil
}
