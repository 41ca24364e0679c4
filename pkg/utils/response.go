package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/domain/models"
)

// ========== Response Structures ==========

// Response - envelope เดียวกันทุก endpoint
type Response struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       any                    `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Details    any                    `json:"details,omitempty"`
	Pagination *models.PaginationInfo `json:"pagination,omitempty"`
	StatusCode int                    `json:"statusCode"`
}

// FieldError - รายละเอียดของ validation error แต่ละ field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any, message string) error {
	if message == "" {
		message = "Success"
	}
	return c.Status(fiber.StatusOK).JSON(Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: fiber.StatusOK,
	})
}

func CreatedResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: fiber.StatusCreated,
	})
}

func PaginatedSuccessResponse(c *fiber.Ctx, data any, pagination models.PaginationInfo) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success:    true,
		Message:    "Success",
		Data:       data,
		Pagination: &pagination,
		StatusCode: fiber.StatusOK,
	})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message, errText string, details any) error {
	return c.Status(statusCode).JSON(Response{
		Success:    false,
		Message:    message,
		Error:      errText,
		Details:    details,
		StatusCode: statusCode,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, details []FieldError) error {
	return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "Bad Request", details)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, "Bad Request", nil)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message, "Unauthorized", nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message, "Not Found", nil)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusConflict, message, "Conflict", nil)
}

func TooManyRequestsResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusTooManyRequests, "Too many requests from this IP, please try again later.", "Too Many Requests", nil)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", "Internal Server Error", nil)
}
