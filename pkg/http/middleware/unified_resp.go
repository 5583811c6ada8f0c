package middleware

import (
	"github.com/go-arcade/navtree/internal/engine/constant"
	httpx "github.com/go-arcade/navtree/pkg/http"
	"github.com/gofiber/fiber/v2"
)

// UnifiedResponseMiddleware 将 handler 写入 Locals 的结果包装为统一响应
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}

		// 业务逻辑错误
		if c.Response().StatusCode() != fiber.StatusOK {
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, httpx.Failed.Msg, c.Path())
		}

		// 业务逻辑正确, 设置响应数据
		if detail := c.Locals(constant.DETAIL); detail != nil {
			return httpx.WithRepJSON(c, detail)
		}

		// 业务逻辑正确, 无响应数据, 只返回结果
		if c.Locals(constant.OPERATION) != nil {
			return httpx.WithRepNotDetail(c)
		}

		return nil
	}
}
