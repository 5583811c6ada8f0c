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
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// ICache 定义缓存接口（抽象）
type ICache interface {
	// Get 获取缓存值，未命中时返回 redis.Nil
	Get(ctx context.Context, key string) *redis.StringCmd
	// Set 设置缓存值
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	// Del 删除缓存
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IsMiss 判断是否未命中
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// GetJSON 读取并反序列化，未命中返回 false
func GetJSON(ctx context.Context, c ICache, key string, out any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if IsMiss(err) {
			return false, nil
		}
		return false, err
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化后写入
func SetJSON(ctx context.Context, c ICache, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, expiration).Err()
}

func missCmd(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	cmd.SetErr(redis.Nil)
	return cmd
}

func toBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return sonic.Marshal(v)
	}
}
