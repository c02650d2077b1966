// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"devjournal/internal/journal/adapters/http/auth"
	"devjournal/internal/journal/adapters/http/content"
	"devjournal/internal/journal/adapters/http/middleware"
	"devjournal/internal/journal/adapters/http/response"
	"devjournal/internal/journal/ports/api"
)

// Dependencies содержит сценарии, которые обслуживает HTTP сервер.
type Dependencies struct {
	Auth      api.AuthUseCase
	Sessions  api.SessionAuthenticator
	Insights  api.InsightUseCase
	Diary     api.DiaryUseCase
	Tutorials api.TutorialUseCase
	Cookie    auth.CookieSettings
}

// NewApp создает приложение fiber с общим обработчиком ошибок.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.ErrorHandler = response.ErrorHandler
	return fiber.New(cfg)
}

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	authHandler := auth.NewHandler(deps.Auth, deps.Cookie)
	requireSession := middleware.NewAuthMiddleware(deps.Sessions, deps.Cookie.Name)

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiGroup := app.Group("/api")

	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)

	// Защищенные маршруты.
	userRoutes := authRoutes.Group("/user")
	userRoutes.Use(requireSession)
	userRoutes.Get("/", authHandler.CurrentUser)

	// Чтение открыто всем, изменения требуют сессии.
	registerContent(apiGroup.Group("/insights"), requireSession, content.NewInsightHandler(deps.Insights))
	registerContent(apiGroup.Group("/diary"), requireSession, content.NewDiaryHandler(deps.Diary))
	registerContent(apiGroup.Group("/tutorials"), requireSession, content.NewTutorialHandler(deps.Tutorials))

	app.Use(func(ctx fiber.Ctx) error {
		return response.Error(ctx, fiber.StatusNotFound, response.MsgRouteNotFound)
	})
}

type contentHandler interface {
	List(ctx fiber.Ctx) error
	Get(ctx fiber.Ctx) error
	Create(ctx fiber.Ctx) error
	Update(ctx fiber.Ctx) error
	Delete(ctx fiber.Ctx) error
}

func registerContent(group fiber.Router, requireSession fiber.Handler, h contentHandler) {
	group.Get("/", h.List)
	group.Get("/:"+content.ParamID, h.Get)

	// Чтение зарегистрировано выше и не доходит до проверки сессии.
	group.Use(requireSession)
	group.Post("/", h.Create)
	group.Patch("/:"+content.ParamID, h.Update)
	group.Delete("/:"+content.ParamID, h.Delete)
}
