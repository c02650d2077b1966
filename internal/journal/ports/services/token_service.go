package services

import (
	"context"

	"devjournal/internal/journal/domain/services"
)

// TokenService подписывает и разбирает токены сессий.
type TokenService interface {
	Issue(ctx context.Context, claims services.TokenClaims) (string, error)
	Parse(ctx context.Context, token string) (*services.TokenClaims, error)
}
