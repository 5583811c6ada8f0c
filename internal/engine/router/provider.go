package router

import (
	"github.com/google/wire"

	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/go-arcade/navtree/pkg/shutdown"
)

// ProviderSet 提供路由相关的依赖
var ProviderSet = wire.NewSet(ProvideRouter)

// ProvideRouter 提供路由实例
func ProvideRouter(httpConf *http.Http, metricsConf metrics.MetricsConfig, m *metrics.Metrics, routes *service.RouteService, sm *shutdown.Manager) *Router {
	return NewRouter(httpConf, metricsConf, m, routes, sm)
}
