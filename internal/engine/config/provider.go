// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/database"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/go-arcade/navtree/pkg/trace"
	"github.com/google/wire"
)

// ProviderSet 提供配置层相关的依赖
var ProviderSet = wire.NewSet(
	ProvideAppConfig,
	ProvideHttpConfig,
	ProvideLogConfig,
	ProvideDatabaseConfig,
	ProvideRedisConfig,
	ProvideTraceConfig,
	ProvideMetricsConfig,
	ProvideMenuConfig,
)

// ProvideAppConfig 启动时的配置快照
func ProvideAppConfig(conf *Conf) *AppConfig {
	return conf.Get()
}

func ProvideHttpConfig(appConf *AppConfig) *http.Http {
	return &appConf.Http
}

func ProvideLogConfig(appConf *AppConfig) *log.Conf {
	return &appConf.Log
}

func ProvideDatabaseConfig(appConf *AppConfig) database.Database {
	return appConf.Database
}

func ProvideRedisConfig(appConf *AppConfig) cache.Redis {
	return appConf.Redis
}

func ProvideTraceConfig(appConf *AppConfig) trace.Conf {
	return appConf.Trace
}

func ProvideMetricsConfig(appConf *AppConfig) metrics.MetricsConfig {
	return appConf.Metrics
}

func ProvideMenuConfig(appConf *AppConfig) *MenuConfig {
	return &appConf.Menu
}
