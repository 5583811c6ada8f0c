package middleware

import (
	"runtime/debug"

	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func ExceptionMiddleware(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("panic recovered", "path", c.Path(), "panic", r, "stack", string(debug.Stack()))
			err = http.WithRepErr(c, http.InternalError.Code, errorToString(r), c.Path())
		}
	}()

	return c.Next()
}

func errorToString(r any) string {
	switch v := r.(type) {
	case http.ResponseErr:
		// 符合预期的错误，可以直接返回给客户端
		if errMsg, ok := v.ErrMsg.(string); ok {
			return errMsg
		}
		return http.InternalError.Msg
	case string:
		return v
	default:
		// 一律返回服务器错误，避免返回堆栈错误给客户端
		return http.InternalError.Msg
	}
}
