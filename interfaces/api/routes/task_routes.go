package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	tasks := api.Group("/tasks", protected)
	tasks.Get("/", h.TaskHandler.GetUserTasks)
	// /stats ต้องมาก่อน /:id
	tasks.Get("/stats", h.TaskHandler.GetUserStats)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:id/toggle", h.TaskHandler.ToggleTaskCompletion)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
