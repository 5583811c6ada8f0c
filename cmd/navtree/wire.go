//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/go-arcade/navtree/internal/engine/bootstrap"
	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/router"
	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/internal/engine/source"
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
)

func initApp(configPath string) (*bootstrap.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.NewConf,
		config.ProviderSet,
		// 日志
		log.ProviderSet,
		// 缓存与指标
		cache.ProviderSet,
		metrics.ProviderSet,
		// 菜单源与服务层
		source.ProviderSet,
		service.ProviderSet,
		// 路由层
		router.ProviderSet,
		// 应用层
		bootstrap.ProviderSet,
	))
}
