// Package auth содержит HTTP обработчики учетных записей и сессий.
package auth

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devjournal/internal/journal/adapters/http/middleware"
	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/app/dto"
	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/api"
	"devjournal/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister    = "auth handler: register"
	LogHandlerLogin       = "auth handler: login"
	LogHandlerLogout      = "auth handler: logout"
	LogHandlerCurrentUser = "auth handler: current user"

	ErrorInvalidRequest = "invalid request"

	msgLoggedOut = "logged out successfully"
)

// CookieSettings описывает cookie с токеном сессии.
type CookieSettings struct {
	Name   string
	Secure bool
}

// Handler содержит HTTP обработчики авторизации.
type Handler struct {
	auth   api.AuthUseCase
	cookie CookieSettings
}

// NewHandler создает обработчик авторизации.
func NewHandler(auth api.AuthUseCase, cookie CookieSettings) *Handler {
	return &Handler{auth: auth, cookie: cookie}
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.Error(ctx, http.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	result, err := h.auth.Register(requestCtx, req.ToInput())
	if err != nil {
		return response.FromError(ctx, err)
	}

	h.setSessionCookie(ctx, result.Session)
	return response.JSON(ctx, http.StatusCreated, dto.NewAuthResponse(result))
}

// Login обрабатывает вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return response.Error(ctx, http.StatusBadRequest, response.MsgInvalidRequestBody)
	}

	result, err := h.auth.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		return response.FromError(ctx, err)
	}

	h.setSessionCookie(ctx, result.Session)
	return response.JSON(ctx, http.StatusOK, dto.NewAuthResponse(result))
}

// Logout завершает сессию запроса, если она есть.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLogout)

	h.auth.Logout(requestCtx, middleware.ExtractToken(ctx, h.cookie.Name))
	ctx.ClearCookie(h.cookie.Name)

	return response.JSON(ctx, http.StatusOK, fiber.Map{"message": msgLoggedOut})
}

// CurrentUser возвращает пользователя текущей сессии.
func (h *Handler) CurrentUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerCurrentUser)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return response.Error(ctx, http.StatusUnauthorized, response.MsgUnauthorized)
	}

	user, err := h.auth.CurrentUser(requestCtx, userID)
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewUser(user))
}

func (h *Handler) setSessionCookie(ctx fiber.Ctx, session *entities.IssuedSession) {
	ctx.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
