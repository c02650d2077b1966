package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/ports/api"
	"devjournal/pkg/logger"
)

const (
	// LocalsUserID - ключ fiber.Locals с идентификатором пользователя сессии.
	LocalsUserID = "userID"

	bearerPrefix = "Bearer "

	logAuthMiddleware = "auth middleware"
	logAuthRejected   = "request rejected: no active session"
)

// ExtractToken достает токен сессии из cookie или заголовка Authorization.
func ExtractToken(ctx fiber.Ctx, cookieName string) string {
	if token := ctx.Cookies(cookieName); token != "" {
		return token
	}
	header := ctx.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return ""
}

// UserID возвращает пользователя, определенного промежуточным ПО аутентификации.
func UserID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(LocalsUserID).(string)
	return userID, ok && userID != ""
}

// NewAuthMiddleware пропускает только запросы с действующей сессией.
func NewAuthMiddleware(sessions api.SessionAuthenticator, cookieName string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, logAuthMiddleware)

		userID, err := sessions.Authorize(requestCtx, ExtractToken(ctx, cookieName))
		if err != nil {
			log.Debug(requestCtx, logAuthRejected)
			return response.Error(ctx, fiber.StatusUnauthorized, response.MsgUnauthorized)
		}

		ctx.Locals(LocalsUserID, userID)
		return ctx.Next()
	}
}
