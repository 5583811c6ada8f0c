package middleware

import (
	"github.com/go-arcade/navtree/internal/engine/constant"
	"github.com/go-arcade/navtree/pkg/id"
	"github.com/gofiber/fiber/v2"
)

func RequestMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestId := c.Get(fiber.HeaderXRequestID)
		if requestId == "" {
			requestId = id.GetUUID()
		}
		c.Request().Header.Set(fiber.HeaderXRequestID, requestId)
		c.Set(fiber.HeaderXRequestID, requestId)
		c.Locals(constant.REQUEST_ID, requestId)
		return c.Next()
	}
}
