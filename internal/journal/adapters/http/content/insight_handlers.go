// Package content содержит HTTP обработчики заметок, дневника и уроков.
package content

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devjournal/internal/journal/adapters/http/middleware"
	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/app/dto"
	"devjournal/internal/journal/ports/api"
	"devjournal/pkg/logger"
)

// ParamID - имя параметра маршрута с идентификатором.
const ParamID = "id"

// InsightHandler обрабатывает запросы к заметкам.
type InsightHandler struct {
	insights api.InsightUseCase
}

// NewInsightHandler создает обработчик заметок.
func NewInsightHandler(insights api.InsightUseCase) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// List возвращает список заметок.
func (h *InsightHandler) List(ctx fiber.Ctx) error {
	return response.JSON(ctx, http.StatusOK, dto.NewInsights(h.insights.List(ctx.Context())))
}

// Get возвращает заметку по идентификатору.
func (h *InsightHandler) Get(ctx fiber.Ctx) error {
	insight, err := h.insights.Get(ctx.Context(), ctx.Params(ParamID))
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewInsight(insight))
}

// Create создает заметку.
func (h *InsightHandler) Create(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.InsightRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	insight, err := h.insights.Create(ctx.Context(), userID, req.ToInput())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusCreated, dto.NewInsight(insight))
}

// Update частично обновляет заметку.
func (h *InsightHandler) Update(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.UpdateInsightRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	insight, err := h.insights.Update(ctx.Context(), userID, ctx.Params(ParamID), req.ToPatch())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewInsight(insight))
}

// Delete удаляет заметку.
func (h *InsightHandler) Delete(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	h.insights.Delete(ctx.Context(), userID, ctx.Params(ParamID))
	return noContent(ctx)
}

func invalidBody(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, response.MsgInvalidRequestBody, zap.Error(err))
	return response.Error(ctx, http.StatusBadRequest, response.MsgInvalidRequestBody)
}

// unauthorized отвечает 401, если в запросе нет пользователя сессии.
func unauthorized(ctx fiber.Ctx) error {
	return response.Error(ctx, http.StatusUnauthorized, response.MsgUnauthorized)
}

func noContent(ctx fiber.Ctx) error {
	if err := ctx.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("failed to send no content response: %w", err)
	}
	return nil
}
