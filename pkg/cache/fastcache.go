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
	"context"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// FastCacheConfig holds fastcache configuration
type FastCacheConfig struct {
	MaxBytes int // Maximum bytes for fastcache, default 64MB
}

// FastCache 基于 VictoriaMetrics fastcache 的本地缓存，过期在读取时惰性判断
// 值统一按 SetBig/GetBig 分块存取，超过 64KB 的路由结果也能命中
type FastCache struct {
	cache *fastcache.Cache
	ttls  sync.Map // map[string]time.Time
	mu    sync.RWMutex
}

func NewFastCache(conf FastCacheConfig) *FastCache {
	maxBytes := conf.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 64 * 1024 * 1024
	}
	return &FastCache{cache: fastcache.New(maxBytes)}
}

func (fc *FastCache) Get(ctx context.Context, key string) *redis.StringCmd {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	if exp, ok := fc.ttls.Load(key); ok && time.Now().After(exp.(time.Time)) {
		return missCmd(ctx, key)
	}
	value := fc.cache.GetBig(nil, []byte(key))
	if value == nil {
		return missCmd(ctx, key)
	}
	cmd := redis.NewStringCmd(ctx, "get", key)
	cmd.SetVal(string(value))
	return cmd
}

func (fc *FastCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	data, err := toBytes(value)
	if err != nil {
		cmd.SetErr(err)
		return cmd
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.cache.SetBig([]byte(key), data)
	if expiration > 0 {
		fc.ttls.Store(key, time.Now().Add(expiration))
	} else {
		fc.ttls.Delete(key)
	}
	cmd.SetVal("OK")
	return cmd
}

func (fc *FastCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var count int64
	for _, key := range keys {
		if fc.cache.Has([]byte(key)) {
			fc.cache.Del([]byte(key))
			count++
		}
		fc.ttls.Delete(key)
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(count)
	return cmd
}

// Clear 清空本地缓存
func (fc *FastCache) Clear() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.cache.Reset()
	fc.ttls.Range(func(key, _ any) bool {
		fc.ttls.Delete(key)
		return true
	})
}

// Stats 返回底层 fastcache 统计
func (fc *FastCache) Stats() fastcache.Stats {
	var s fastcache.Stats
	fc.cache.UpdateStats(&s)
	return s
}

// Collectors 以 prometheus 指标导出本地缓存统计
func (fc *FastCache) Collectors(namespace string) []prometheus.Collector {
	gauge := func(name, help string, value func(s *fastcache.Stats) uint64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "local_cache",
			Name:      name,
			Help:      help,
		}, func() float64 {
			s := fc.Stats()
			return float64(value(&s))
		})
	}
	return []prometheus.Collector{
		gauge("entries", "Number of entries in the local route cache.", func(s *fastcache.Stats) uint64 { return s.EntriesCount }),
		gauge("bytes", "Bytes used by the local route cache.", func(s *fastcache.Stats) uint64 { return s.BytesSize }),
		gauge("big_sets", "SetBig calls on the local route cache.", func(s *fastcache.Stats) uint64 { return s.SetBigCalls }),
		gauge("big_gets", "GetBig calls on the local route cache.", func(s *fastcache.Stats) uint64 { return s.GetBigCalls }),
	}
}
