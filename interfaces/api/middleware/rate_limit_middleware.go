package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/JorgeJ97/task-management-backend/pkg/logger"
	"github.com/JorgeJ97/task-management-backend/pkg/utils"
)

// RateLimiter จำกัดจำนวน request ต่อ IP ต่อ window
// storage เป็น nil ได้ (ใช้ memory ของ instance นี้)
func RateLimiter(max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		Storage:           storage,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WarnContext(c.UserContext(), "Rate limit reached", "ip", c.IP())
			return utils.TooManyRequestsResponse(c)
		},
	})
}
