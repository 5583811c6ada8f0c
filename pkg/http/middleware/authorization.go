package middleware

import (
	"errors"
	"strings"

	"github.com/go-arcade/navtree/internal/engine/constant"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/http/jwt"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"
)

// AuthorizationMiddleware 校验 Bearer 令牌并把 claims 写入 Locals
func AuthorizationMiddleware(secretKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get(fiber.HeaderAuthorization)
		if aToken == "" {
			return http.WithRepErrMsg(c, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
		}

		// 按空格分割
		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErrMsg(c, http.TokenFormatIncorrect.Code, http.TokenFormatIncorrect.Msg, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErrMsg(c, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
			}
			log.Warnw("parse token failed", "path", c.Path(), "error", err)
			return http.WithRepErrMsg(c, http.InvalidToken.Code, http.InvalidToken.Msg, c.Path())
		}

		c.Locals(constant.CLAIMS, claims)
		return c.Next()
	}
}

// Claims 读取认证中间件写入的 claims
func Claims(c *fiber.Ctx) (*jwt.AuthClaims, bool) {
	claims, ok := c.Locals(constant.CLAIMS).(*jwt.AuthClaims)
	return claims, ok && claims != nil
}
