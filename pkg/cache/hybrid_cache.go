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
	"time"

	"github.com/go-arcade/navtree/pkg/log"
	"github.com/redis/go-redis/v9"
)

// HybridCacheConfig holds hybrid cache configuration
type HybridCacheConfig struct {
	LocalTTLRatio float64 // 本地 TTL 占远程 TTL 的比例 (0.0-1.0)
	DefaultTTL    time.Duration
}

// HybridCache 本地 fastcache 加远程 Redis，remote 可以为空
type HybridCache struct {
	local  *FastCache
	remote ICache
	config HybridCacheConfig
}

func NewHybridCache(local *FastCache, remote ICache, config HybridCacheConfig) *HybridCache {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = 10 * time.Minute
	}
	return &HybridCache{local: local, remote: remote, config: config}
}

func (hc *HybridCache) localTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		ttl = hc.config.DefaultTTL
	}
	if hc.config.LocalTTLRatio > 0 && hc.config.LocalTTLRatio < 1.0 {
		return time.Duration(float64(ttl) * hc.config.LocalTTLRatio)
	}
	return ttl
}

// Get 先查本地，再查远程并回填本地
func (hc *HybridCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if hc.local != nil {
		if cmd := hc.local.Get(ctx, key); cmd.Err() == nil {
			log.Debugw("hybrid cache hit (local)", "key", key)
			return cmd
		}
	}
	if hc.remote != nil {
		cmd := hc.remote.Get(ctx, key)
		if cmd.Err() == nil {
			log.Debugw("hybrid cache hit (remote)", "key", key)
			if hc.local != nil {
				hc.local.Set(ctx, key, cmd.Val(), hc.localTTL(0))
			}
			return cmd
		}
		if !IsMiss(cmd.Err()) {
			log.Warnw("hybrid cache remote get failed", "key", key, "error", cmd.Err())
		}
	}
	return missCmd(ctx, key)
}

// Set 同时写本地和远程，远程失败只记录日志
func (hc *HybridCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	data, err := toBytes(value)
	if err != nil {
		cmd := redis.NewStatusCmd(ctx, "set", key)
		cmd.SetErr(err)
		return cmd
	}
	var cmd *redis.StatusCmd
	if hc.local != nil {
		cmd = hc.local.Set(ctx, key, data, hc.localTTL(expiration))
	}
	if hc.remote != nil {
		if rcmd := hc.remote.Set(ctx, key, data, expiration); rcmd.Err() != nil {
			log.Warnw("hybrid cache remote set failed", "key", key, "error", rcmd.Err())
			if cmd == nil {
				return rcmd
			}
		} else if cmd == nil {
			cmd = rcmd
		}
	}
	if cmd == nil {
		cmd = redis.NewStatusCmd(ctx, "set", key)
		cmd.SetVal("OK")
	}
	return cmd
}

func (hc *HybridCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var count int64
	if hc.local != nil {
		count = hc.local.Del(ctx, keys...).Val()
	}
	if hc.remote != nil {
		rcmd := hc.remote.Del(ctx, keys...)
		if rcmd.Err() != nil {
			log.Warnw("hybrid cache remote del failed", "keys", keys, "error", rcmd.Err())
		} else if rcmd.Val() > count {
			count = rcmd.Val()
		}
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(count)
	return cmd
}

// FlushLocal 清空本地层，配置热更新时调用
func (hc *HybridCache) FlushLocal() {
	if hc.local != nil {
		hc.local.Clear()
	}
}
