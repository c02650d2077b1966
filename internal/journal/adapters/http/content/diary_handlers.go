package content

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"devjournal/internal/journal/adapters/http/middleware"
	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/app/dto"
	"devjournal/internal/journal/ports/api"
)

// DiaryHandler обрабатывает запросы к дневнику.
type DiaryHandler struct {
	diary api.DiaryUseCase
}

// NewDiaryHandler создает обработчик дневника.
func NewDiaryHandler(diary api.DiaryUseCase) *DiaryHandler {
	return &DiaryHandler{diary: diary}
}

// List возвращает список записей дневника.
func (h *DiaryHandler) List(ctx fiber.Ctx) error {
	return response.JSON(ctx, http.StatusOK, dto.NewDiaryEntries(h.diary.List(ctx.Context())))
}

// Get возвращает запись дневника по идентификатору.
func (h *DiaryHandler) Get(ctx fiber.Ctx) error {
	entry, err := h.diary.Get(ctx.Context(), ctx.Params(ParamID))
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewDiaryEntry(entry))
}

// Create создает запись дневника.
func (h *DiaryHandler) Create(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.DiaryEntryRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	entry, err := h.diary.Create(ctx.Context(), userID, req.ToInput())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusCreated, dto.NewDiaryEntry(entry))
}

// Update частично обновляет запись дневника.
func (h *DiaryHandler) Update(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req dto.UpdateDiaryEntryRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return invalidBody(ctx, err)
	}

	entry, err := h.diary.Update(ctx.Context(), userID, ctx.Params(ParamID), req.ToPatch())
	if err != nil {
		return response.FromError(ctx, err)
	}
	return response.JSON(ctx, http.StatusOK, dto.NewDiaryEntry(entry))
}

// Delete удаляет запись дневника.
func (h *DiaryHandler) Delete(ctx fiber.Ctx) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	h.diary.Delete(ctx.Context(), userID, ctx.Params(ParamID))
	return noContent(ctx)
}
