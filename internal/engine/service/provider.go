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

package service

import (
	"github.com/google/wire"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/source"
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
)

// ProviderSet 提供服务层依赖
var ProviderSet = wire.NewSet(ProvideRouteService)

// ProvideRouteService 创建 RouteService 并订阅配置变更
func ProvideRouteService(conf *config.Conf, src source.MenuSource, store *cache.HybridCache, m *metrics.Metrics) (*RouteService, error) {
	svc, err := NewRouteService(src, store, m, &conf.Get().Menu)
	if err != nil {
		return nil, err
	}
	conf.OnChange(func(cfg *config.AppConfig) {
		if err := svc.Reload(&cfg.Menu); err != nil {
			log.Errorw("failed to reload route service", "error", err)
		}
	})
	return svc, nil
}
