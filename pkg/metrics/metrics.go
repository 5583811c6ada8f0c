package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace 所有 navtree 指标的前缀
const Namespace = "navtree"

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enable bool
	Path   string
}

func (c *MetricsConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

// Metrics 持有 prometheus registry 和 navtree 指标
type Metrics struct {
	registry *prometheus.Registry

	// PassTotal 按结果统计生成次数 (ok, fallback)
	PassTotal *prometheus.CounterVec
	// StageDuration 各阶段耗时 (fetch, compile)
	StageDuration *prometheus.HistogramVec
	// StoreTotal 路由缓存命中 (hit, miss, rebuild)
	StoreTotal *prometheus.CounterVec
	// UnresolvedViews 未找到视图模块的路由数
	UnresolvedViews prometheus.Counter
	// BindConflicts 候选模块冲突数
	BindConflicts prometheus.Counter

	mu sync.Mutex
}

// NewMetrics 创建独立 registry，避免测试之间重复注册
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		PassTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "route_pass_total",
			Help:      "Route generation passes by result.",
		}, []string{"result"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "route_stage_duration_seconds",
			Help:      "Duration of route generation stages.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"stage"}),
		StoreTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "route_store_total",
			Help:      "Route store lookups by outcome.",
		}, []string{"outcome"}),
		UnresolvedViews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "unresolved_views_total",
			Help:      "Routes whose view module could not be found.",
		}),
		BindConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bind_conflicts_total",
			Help:      "Routes with more than one candidate view module.",
		}),
	}
	registry.MustRegister(m.PassTotal, m.StageDuration, m.StoreTotal, m.UnresolvedViews, m.BindConflicts)
	return m
}

// RegisterCollector registers an extra prometheus collector
func (m *Metrics) RegisterCollector(c prometheus.Collector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry.Register(c)
}

// Handler 返回 /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
