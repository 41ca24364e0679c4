package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/interfaces/api/handlers"
	"github.com/JorgeJ97/task-management-backend/interfaces/api/middleware"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

// Options - สิ่งที่ routes ต้องใช้นอกเหนือจาก handlers
type Options struct {
	Token   utils.TokenOptions
	Metrics fiber.Handler // nil = ไม่เปิด /metrics
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app, h, opts.Metrics)

	api := app.Group("/api/v1")
	protected := middleware.Protected(opts.Token)

	SetupAuthRoutes(api, h, protected)
	SetupTaskRoutes(api, h, protected)

	app.Use(middleware.NotFoundHandler())
}
