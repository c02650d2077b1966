// Package response формирует JSON ответы и сопоставляет ошибки со статусами HTTP.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/domain/services"
	"devjournal/pkg/logger"
)

// Сообщения об ошибках в теле ответа.
const (
	MsgInvalidRequestBody = "invalid request body"
	MsgUnauthorized       = "unauthorized"
	MsgNotFound           = "not found"
	MsgRouteNotFound      = "route not found"
	MsgInternal           = "internal server error"

	logRequestFailed = "request failed"
)

// Status возвращает HTTP статус для доменной ошибки.
func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrDuplicateUsername), errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает безопасное для клиента описание ошибки.
func Message(err error) string {
	var fieldErr *services.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Error()
	case errors.Is(err, entities.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, entities.ErrDuplicateUsername):
		return entities.ErrDuplicateUsername.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return services.ErrInvalidCredentials.Error()
	case errors.Is(err, services.ErrUnauthenticated):
		return MsgUnauthorized
	default:
		return MsgInternal
	}
}

// Error отправляет тело {"error": message} с указанным статусом.
func Error(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{"error": message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// FromError логирует ошибку сценария и отправляет соответствующий ответ.
func FromError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	status := Status(err)
	if status >= http.StatusInternalServerError {
		logger.Log(requestCtx).Error(requestCtx, logRequestFailed, zap.Error(err))
	} else {
		logger.Log(requestCtx).Debug(requestCtx, logRequestFailed, zap.Int("status", status), zap.Error(err))
	}
	return Error(ctx, status, Message(err))
}

// JSON отправляет значение с указанным статусом.
func JSON(ctx fiber.Ctx, status int, v any) error {
	if err := ctx.Status(status).JSON(v); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ErrorHandler обрабатывает ошибки, вернувшиеся из обработчиков fiber.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return Error(ctx, fiberErr.Code, fiberErr.Message)
	}
	return FromError(ctx, err)
}
