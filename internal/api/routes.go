package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.AuthRequired, handler.LanguageMiddleware)

	api.Get("/logs", handler.ListLogs)
	api.Post("/logs", handler.CreateLog)
	api.Delete("/logs/:id", handler.DeleteLog)

	api.Get("/settings", handler.GetSettings)
	api.Put("/settings", handler.UpdateSettings)

	api.Get("/cycles", handler.GetCycles)
	api.Get("/insights", handler.GetInsights)
	api.Get("/insights/context", handler.GetInsightsContext)

	app.Use(handler.NotFound)
}
