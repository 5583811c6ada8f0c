package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/router"
	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/safe"
	"github.com/go-arcade/navtree/pkg/shutdown"
	"github.com/go-arcade/navtree/pkg/trace"
)

// ProviderSet 应用层依赖
var ProviderSet = wire.NewSet(ProvideTracing, shutdown.ProviderSet, NewApp)

type App struct {
	HttpApp  *fiber.App
	Logger   *log.Logger
	Conf     *config.Conf
	Routes   *service.RouteService
	Shutdown *shutdown.Manager
}

// Tracing 全局 TracerProvider 已安装的标记
type Tracing struct{}

// InitAppFunc init app function type
type InitAppFunc func(configPath string) (*App, func(), error)

// ProvideTracing 安装全局 TracerProvider，cleanup 负责 flush
func ProvideTracing(conf trace.Conf) (*Tracing, func(), error) {
	shutdown, err := trace.InitTracerProvider(context.Background(), conf)
	if err != nil {
		return nil, nil, err
	}
	return &Tracing{}, shutdown, nil
}

// NewApp 参数顺序即 wire 初始化顺序，日志和 trace 在前
func NewApp(
	logger *log.Logger,
	_ *Tracing,
	conf *config.Conf,
	rt *router.Router,
	routes *service.RouteService,
	sm *shutdown.Manager,
) (*App, func(), error) {
	app := &App{
		HttpApp:  rt.Router(),
		Logger:   logger,
		Conf:     conf,
		Routes:   routes,
		Shutdown: sm,
	}

	// 日志级别等配置热更新
	conf.OnChange(func(cfg *config.AppConfig) {
		if err := log.Init(&cfg.Log); err != nil {
			log.Errorw("failed to reload logger", "error", err)
		}
	})

	cleanup := func() {
		_ = log.Sync()
	}
	return app, cleanup, nil
}

// Bootstrap init app, return App instance and cleanup function
func Bootstrap(configFile string, initApp InitAppFunc) (*App, func(), error) {
	// 所有依赖都由 wire 注入
	app, cleanup, err := initApp(configFile)
	if err != nil {
		return nil, nil, err
	}
	return app, cleanup, nil
}

// Run start app and wait for exit signal, then gracefully shutdown
func Run(app *App, cleanup func()) {
	logger := app.Logger.Log
	httpConf := app.Conf.Get().Http

	// set signal listener (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// start HTTP server (async)
	safe.Go("http-listener", func() {
		glog := logger.Desugar().WithOptions(zap.AddCallerSkip(-1)).Sugar()
		addr := httpConf.Addr()
		glog.Infow("HTTP listener started", "address", addr)

		var err error
		if httpConf.TLS.CertFile != "" && httpConf.TLS.KeyFile != "" {
			err = app.HttpApp.ListenTLS(addr, httpConf.TLS.CertFile, httpConf.TLS.KeyFile)
		} else {
			err = app.HttpApp.Listen(addr)
		}
		if err != nil {
			glog.Errorw("HTTP listener failed", "address", addr, zap.Error(err))
		}
	})

	// wait for exit signal
	sig := <-quit
	logger.Infof("Received signal: %v, shutting down gracefully...", sig)
	app.Shutdown.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(httpConf.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server shut down gracefully")
	}

	cleanup()

	logger.Info("Server shutdown complete")
}
