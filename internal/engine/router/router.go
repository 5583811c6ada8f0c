package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/http/middleware"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/go-arcade/navtree/pkg/shutdown"
	"github.com/go-arcade/navtree/pkg/version"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 15:48
 * @file: router.go
 * @description: setup router
 *  		     menu api router, use by web
 */

type Router struct {
	Http        *http.Http
	MetricsConf metrics.MetricsConfig
	Metrics     *metrics.Metrics
	Routes      *service.RouteService
	Shutdown    *shutdown.Manager
}

func NewRouter(httpConf *http.Http, metricsConf metrics.MetricsConfig, m *metrics.Metrics, routes *service.RouteService, sm *shutdown.Manager) *Router {
	return &Router{
		Http:        httpConf,
		MetricsConf: metricsConf,
		Metrics:     m,
		Routes:      routes,
		Shutdown:    sm,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(rt.Http.FiberConfig("Navtree"))

	// 中间件
	app.Use(
		middleware.RequestMiddleware(),
		middleware.ExceptionMiddleware,
		middleware.CorsMiddleware(),
		middleware.AccessLogMiddleware(rt.Http),
		middleware.TraceMiddleware(),
		middleware.UnifiedResponseMiddleware(),
	)

	if rt.Http.PProf {
		rt.debugRouter(app.Group("/debug/pprof"))
	}

	if rt.Http.ExposeMetrics || rt.MetricsConf.Enable {
		path := rt.MetricsConf.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(rt.Metrics.Handler()))
	}

	// 健康检查
	app.Get("/health", func(c *fiber.Ctx) error {
		if rt.Shutdown != nil && rt.Shutdown.IsShuttingDown() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
		}
		return c.SendString("ok")
	})

	// 版本信息
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	api := app.Group(rt.Http.ContextPath)
	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey)
	rt.menuRouter(api, auth)

	// 找不到路径时的处理，必须在所有路由注册之后
	app.Use(func(c *fiber.Ctx) error {
		c.Status(fiber.StatusNotFound)
		return http.WithRepErr(c, http.NotFound.Code, "request path not found", c.Path())
	})

	return app
}
