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

package cache

import (
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/google/wire"
)

// defaultLocalMaxBytes 64MB，每个分桶至少两个 64KB chunk
const defaultLocalMaxBytes = 64 * 1024 * 1024

// ProviderSet 提供缓存依赖（本地 FastCache + 可选 Redis）
var ProviderSet = wire.NewSet(
	ProvideFastCache,
	ProvideHybridCache,
)

// ProvideFastCache 创建本地缓存并注册统计指标
func ProvideFastCache(m *metrics.Metrics) *FastCache {
	fc := NewFastCache(FastCacheConfig{MaxBytes: defaultLocalMaxBytes})
	for _, c := range fc.Collectors(metrics.Namespace) {
		if err := m.RegisterCollector(c); err != nil {
			log.Warnw("failed to register local cache metrics", "error", err)
		}
	}
	return fc
}

// ProvideHybridCache redis 未启用或连接失败时退化为纯本地缓存
func ProvideHybridCache(local *FastCache, conf Redis) *HybridCache {
	var remote ICache
	if conf.Enabled {
		client, err := NewRedisCmdable(conf)
		if err != nil {
			log.Warnw("redis unavailable, using local cache only", "error", err)
		} else {
			remote = NewRedisCache(client)
		}
	}
	return NewHybridCache(local, remote, HybridCacheConfig{LocalTTLRatio: 0.8})
}
