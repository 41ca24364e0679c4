package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

// Protected validates the bearer token and stores the caller identity in locals.
func Protected(opts utils.TokenOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateToken(token, opts)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "error", err)
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, utils.ErrMissingToken):
				return utils.UnauthorizedResponse(c, "Missing token")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		utils.SetUserContext(c, userCtx)
		c.SetUserContext(logger.ContextWithUserID(c.UserContext(), userCtx.ID))

		return c.Next()
	}
}
