package middleware

import (
	"strings"
	"time"

	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type writerFunc func(p []byte) (int, error)

func (w writerFunc) Write(p []byte) (int, error) {
	return w(p)
}

// excludedPaths 不记录访问日志的路径，以 "/*" 结尾表示前缀匹配
var excludedPaths = []string{
	"/health",
	"/metrics",
}

func AccessLogMiddleware(httpConfig *http.Http) fiber.Handler {
	if httpConfig != nil && !httpConfig.AccessLog {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return logger.New(logger.Config{
		TimeFormat: time.RFC3339Nano,
		TimeZone:   "Local",
		Format:     "ip:[${ip}] method:[${method}] path:[${path}] latency:[${latency}] status:[${status}] requestId:[${respHeader:X-Request-Id}] error:[${error}] ua:[${ua}]",
		Next: func(c *fiber.Ctx) bool {
			return skipAccessLog(c.Path())
		},
		Output: writerFunc(func(p []byte) (int, error) {
			log.Debug(strings.TrimSpace(string(p)))
			return len(p), nil
		}),
	})
}

func skipAccessLog(path string) bool {
	for _, rule := range excludedPaths {
		if prefix, ok := strings.CutSuffix(rule, "/*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		} else if path == rule {
			return true
		}
	}
	return false
}
