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
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/go-arcade/navtree/internal/pkg/menutree"
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/database"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/go-arcade/navtree/pkg/safe"
	"github.com/go-arcade/navtree/pkg/trace"
)

const (
	SourceDatabase = "database"
	SourceHTTP     = "http"
	SourceFile     = "file"
)

// Mapping 查找表覆盖项
// viper 会把 map 的 key 转成小写，所以覆盖项用数组表示
type Mapping struct {
	Key   string
	Value string
}

type Overrides struct {
	Components []Mapping
	Icons      []Mapping
	Titles     []Mapping
}

type MenuConfig struct {
	// Source 菜单源：database、http、file
	Source       string
	Endpoint     string
	File         string
	ManifestFile string
	ModuleRoot   string
	NameStrategy string
	CollapseRule string
	// CacheTTL 生成结果缓存时间（秒）
	CacheTTL int
	// Timeout 菜单源请求超时（秒）
	Timeout   int
	Overrides Overrides
}

func (m *MenuConfig) SetDefaults() {
	if m.Source == "" {
		m.Source = SourceDatabase
	}
	if m.ModuleRoot == "" {
		m.ModuleRoot = menutree.DefaultModuleRoot
	}
	if m.NameStrategy == "" {
		m.NameStrategy = string(menutree.NameIdBased)
	}
	if m.CollapseRule == "" {
		m.CollapseRule = string(menutree.CollapseSingleChild)
	}
	if m.CacheTTL == 0 {
		m.CacheTTL = 600
	}
	if m.Timeout == 0 {
		m.Timeout = 5
	}
}

func (m *MenuConfig) Validate() error {
	switch m.Source {
	case SourceDatabase:
	case SourceHTTP:
		if m.Endpoint == "" {
			return fmt.Errorf("menu.endpoint is required when menu.source is %q", m.Source)
		}
	case SourceFile:
		if m.File == "" {
			return fmt.Errorf("menu.file is required when menu.source is %q", m.Source)
		}
	default:
		return fmt.Errorf("unsupported menu source: %s", m.Source)
	}
	if _, err := menutree.ParseNameStrategy(m.NameStrategy); err != nil {
		return err
	}
	if _, err := menutree.ParseCollapseRule(m.CollapseRule); err != nil {
		return err
	}
	return nil
}

func (m *MenuConfig) TTL() time.Duration {
	return time.Duration(m.CacheTTL) * time.Second
}

func (m *MenuConfig) RequestTimeout() time.Duration {
	return time.Duration(m.Timeout) * time.Second
}

// Tables 内置查找表叠加配置覆盖项
func (m *MenuConfig) Tables() *menutree.Tables {
	return menutree.DefaultTables().Merge(
		toMap(m.Overrides.Components),
		toMap(m.Overrides.Icons),
		toMap(m.Overrides.Titles),
	)
}

func toMap(items []Mapping) map[string]string {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]string, len(items))
	for _, it := range items {
		if it.Key != "" {
			out[it.Key] = it.Value
		}
	}
	return out
}

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Trace    trace.Conf
	Metrics  metrics.MetricsConfig
	Menu     MenuConfig
}

func (c *AppConfig) SetDefaults() {
	def := log.SetDefaults()
	if c.Log.Output == "" {
		c.Log.Output = def.Output
	}
	if c.Log.Path == "" {
		c.Log.Path = def.Path
	}
	if c.Log.Filename == "" {
		c.Log.Filename = def.Filename
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Level
	}
	if c.Log.KeepHours == 0 {
		c.Log.KeepHours = def.KeepHours
	}
	if c.Log.RotateSize == 0 {
		c.Log.RotateSize = def.RotateSize
	}
	if c.Log.RotateNum == 0 {
		c.Log.RotateNum = def.RotateNum
	}
	c.Http.SetDefaults()
	c.Database.SetDefaults()
	c.Metrics.SetDefaults()
	c.Menu.SetDefaults()
}

func (c *AppConfig) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	if err := c.Menu.Validate(); err != nil {
		return fmt.Errorf("invalid menu config: %w", err)
	}
	return nil
}

// LoadConfigFile 读取并校验配置文件
func LoadConfigFile(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Conf 持有当前配置，文件变化时重新解析并通知订阅者
type Conf struct {
	path      string
	mu        sync.RWMutex
	current   *AppConfig
	listeners []func(*AppConfig)
}

// NewConf 加载配置文件并开始监听变化
func NewConf(path string) (*Conf, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	c := &Conf{path: path, current: cfg}
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("configuration changed, reloading", "file", e.Name)
		c.reload(v)
	})
	v.WatchConfig()

	log.Infow("config file loaded", "path", path)
	return c, nil
}

func (c *Conf) reload(v *viper.Viper) {
	cfg, err := decode(v)
	if err != nil {
		log.Errorw("failed to reload configuration, keeping previous", "path", c.path, "error", err)
		return
	}
	c.mu.Lock()
	c.current = cfg
	listeners := append([]func(*AppConfig){}, c.listeners...)
	c.mu.Unlock()

	for i, fn := range listeners {
		safe.Do(fmt.Sprintf("config-listener-%d", i), func() { fn(cfg) })
	}
}

// Get 返回当前配置快照，调用方不要修改
func (c *Conf) Get() *AppConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// OnChange 注册配置变更回调
func (c *Conf) OnChange(fn func(*AppConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}
