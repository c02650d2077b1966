package content

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"devjournal/internal/journal/adapters/http/middleware"
	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/app/dto"
	"devjournal/internal/journal/ports/api"
)

// TutorialHandler обрабатывает запросы к урокам.
type TutorialHandler struct {
	tutorials api.TutorialUseCase
}

// NewTutorialHandler создает обработчик уроков.
func NewTutorialHandler(tutorials api.TutorialUseCase) *TutorialHandler {
	return &TutorialHandler{tutorials: tutorials}
}

// List возвращает список уроков.
func (h *TutorialHandler) List(ctx fiber.Ctx) error {
	return response.JSON(ctx, http.StatusOK, dto.NewTutorials(h.tutorials.List(ctx.Context())))
}

// Get возвращает урок по идентификатору.
func (h *TutorialHandler) Get(ctx fiber.Ctx) error {
	tutorial, err := h.tutorials.Get(ctx.Context(), ctx.Params(ParamID))
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewTutorial(tutorial))
}

// Create создает урок.
func (h *TutorialHandler) Create(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.TutorialRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	tutorial, err := h.tutorials.Create(ctx.Context(), userID, req.ToInput())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusCreated, dto.NewTutorial(tutorial))
}

// Update частично обновляет урок.
func (h *TutorialHandler) Update(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.UpdateTutorialRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	tutorial, err := h.tutorials.Update(ctx.Context(), userID, ctx.Params(ParamID), req.ToPatch())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewTutorial(tutorial))
}

// Delete удаляет урок.
func (h *TutorialHandler) Delete(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	h.tutorials.Delete(ctx.Context(), userID, ctx.Params(ParamID))
	return noContent(ctx)
}
