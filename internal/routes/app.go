package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/example/courseorders/internal/middleware"
	"github.com/example/courseorders/internal/views"
)

// NewApp builds the fiber app with views, error handling, logging and metrics.
func NewApp(log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Course Orders",
		Views:        views.NewEngine(),
		ErrorHandler: middleware.ErrorHandler(log),
	})

	// recover sits innermost so a panic still reaches the request log and metrics as a 500.
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.Metrics())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
