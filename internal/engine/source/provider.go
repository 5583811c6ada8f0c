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

package source

import (
	"fmt"

	"github.com/google/wire"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/repo"
	"github.com/go-arcade/navtree/pkg/database"
)

var ProviderSet = wire.NewSet(ProvideMenuSource)

// ProvideMenuSource 按 menu.source 创建菜单源，数据库源才建立数据库连接
func ProvideMenuSource(conf *config.MenuConfig, dbConf database.Database) (MenuSource, error) {
	switch conf.Source {
	case config.SourceDatabase:
		db, err := database.ProvideDatabase(dbConf)
		if err != nil {
			return nil, err
		}
		return NewDatabaseSource(repo.NewMenuRepo(db)), nil
	case config.SourceHTTP:
		return NewHTTPSource(conf.Endpoint, conf.RequestTimeout()), nil
	case config.SourceFile:
		return NewFileSource(conf.File), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, conf.Source)
	}
}
