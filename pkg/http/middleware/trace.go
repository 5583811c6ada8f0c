package middleware

import (
	"github.com/go-arcade/navtree/pkg/trace/inject"
	"github.com/gofiber/fiber/v2"
)

// TraceMiddleware 为每个请求创建服务端 span
func TraceMiddleware() fiber.Handler {
	return inject.FiberMiddleware()
}
