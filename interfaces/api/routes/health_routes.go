package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers, metrics fiber.Handler) {
	app.Get("/health", h.HealthHandler.Health)
	app.Get("/health/ready", h.HealthHandler.Ready)

	if metrics != nil {
		app.Get("/metrics", metrics)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Task Management API",
			"version": "1.0.0",
			"docs":    "/api/v1",
			"health":  "/health",
		})
	})
}
