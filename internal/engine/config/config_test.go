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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[log]
output = "stdout"
level = "DEBUG"

[http]
port = 9090
contextPath = "/nav"

[http.auth]
secretKey = "secret"

[menu]
source = "file"
file = "./menus.yaml"
nameStrategy = "path"
cacheTTL = 30

[[menu.overrides.components]]
key = "report/Daily/index"
value = "/report/daily"

[[menu.overrides.icons]]
key = "Chart"
value = "BarChartOutlined"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Http.Port)
	assert.Equal(t, "/nav", cfg.Http.ContextPath)
	assert.Equal(t, "secret", cfg.Http.Auth.SecretKey)
	assert.Equal(t, "0.0.0.0", cfg.Http.Host)

	assert.Equal(t, SourceFile, cfg.Menu.Source)
	assert.Equal(t, "path", cfg.Menu.NameStrategy)
	assert.Equal(t, "single-child", cfg.Menu.CollapseRule)
	assert.Equal(t, "../views", cfg.Menu.ModuleRoot)
	assert.Equal(t, 30*time.Second, cfg.Menu.TTL())
	assert.Equal(t, 5*time.Second, cfg.Menu.RequestTimeout())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestMenuConfig_TablesKeepCase(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	tables := cfg.Menu.Tables()
	assert.Equal(t, "/report/daily", tables.Components["report/Daily/index"])
	assert.Equal(t, "BarChartOutlined", tables.Icon("Chart"))
	assert.Equal(t, "/org/user/user", tables.Components["system/user/index"])
}

func TestMenuConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		conf    MenuConfig
		wantErr bool
	}{
		{name: "database", conf: MenuConfig{Source: SourceDatabase}},
		{name: "http without endpoint", conf: MenuConfig{Source: SourceHTTP}, wantErr: true},
		{name: "http", conf: MenuConfig{Source: SourceHTTP, Endpoint: "http://menus"}},
		{name: "file without path", conf: MenuConfig{Source: SourceFile}, wantErr: true},
		{name: "unknown source", conf: MenuConfig{Source: "ldap"}, wantErr: true},
		{name: "bad strategy", conf: MenuConfig{Source: SourceDatabase, NameStrategy: "random"}, wantErr: true},
		{name: "bad collapse", conf: MenuConfig{Source: SourceDatabase, CollapseRule: "never"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := tt.conf
			conf.SetDefaults()
			err := conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfigFile(writeConfig(t, "[menu]\nsource = \"ldap\"\n"))
	assert.Error(t, err)
}

func TestNewConf_OnChange(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	conf, err := NewConf(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, conf.Get().Http.Port)

	changed := make(chan *AppConfig, 1)
	conf.OnChange(func(cfg *AppConfig) {
		if cfg.Http.Port != 9191 {
			return
		}
		select {
		case changed <- cfg:
		default:
		}
	})

	updated := strings.Replace(sampleConfig, "port = 9090", "port = 9191", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case cfg := <-changed:
		assert.Equal(t, 9191, cfg.Http.Port)
		assert.Equal(t, 9191, conf.Get().Http.Port)
	case <-time.After(3 * time.Second):
		t.Skip("file watcher did not fire in time")
	}
}
