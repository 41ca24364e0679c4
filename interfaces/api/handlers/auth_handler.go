package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/application/serviceimpl"
	"github.com/JorgeJ97/task-management-backend/domain/dto"
	"github.com/JorgeJ97/task-management-backend/domain/services"
	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.Name = utils.SanitizeString(req.Name)
	req.LastName = utils.SanitizeString(req.LastName)

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrEmailExists) {
			return utils.ConflictResponse(c, "Email already exists")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	}, "User registered successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	}, "Login successful")
}

// Me คืน profile ของเจ้าของ token
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}
	if profile == nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile), "")
}
