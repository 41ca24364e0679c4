package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"

	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

// ErrorHandler แปลง error ที่หลุดจาก handler (รวม panic ที่ recover จับได้) เป็น envelope
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.ErrorContext(c.UserContext(), "Unhandled error", "status", fe.Code, "error", err)
			}
			return utils.ErrorResponse(c, fe.Code, fe.Message, errorText(fe.Code), nil)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}

func errorText(code int) string {
	if text := fiberutils.StatusMessage(code); text != "" {
		return text
	}
	return "Error"
}

// NotFoundHandler - route ที่ไม่มีอยู่
func NotFoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Route not found")
	}
}
