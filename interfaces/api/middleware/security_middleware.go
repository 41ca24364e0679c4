package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JorgeJ97/task-management-backend/pkg/logger"
)

func SecurityHeaders() fiber.Handler {
	return helmet.New()
}

// Recover turns a panic into an error for ErrorHandler and logs the value.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.ErrorContext(c.UserContext(), "Panic recovered", "panic", fmt.Sprint(e), "path", c.Path())
		},
	})
}
