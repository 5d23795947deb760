package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppOptions struct {
	AccessLog        bool
	CORSAllowOrigins string
}

// NewApp assembles the fiber application with the shared middleware stack
// and every route registered.
func NewApp(handler *Handler, options AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ovumcy-insights",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(recover.New())
	if options.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())
	if options.CORSAllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: options.CORSAllowOrigins,
			AllowHeaders: "Authorization, Content-Type, Accept-Language",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))
	}

	RegisterRoutes(app, handler)
	return app
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	return apiError(c, status, message)
}
