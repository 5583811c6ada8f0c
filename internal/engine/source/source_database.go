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
	"context"
	"fmt"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/internal/engine/repo"
)

// DatabaseSource 从 t_sys_menu 读取菜单
type DatabaseSource struct {
	repo repo.IMenuRepository
}

func NewDatabaseSource(menuRepo repo.IMenuRepository) *DatabaseSource {
	return &DatabaseSource{repo: menuRepo}
}

func (s *DatabaseSource) Name() string {
	return "database"
}

func (s *DatabaseSource) Fetch(ctx context.Context, session *model.Session) ([]model.MenuRecord, error) {
	var (
		tenantId uint64
		roles    []string
	)
	if session != nil {
		tenantId = session.TenantId
		roles = session.Roles
	}
	menus, err := s.repo.ListMenus(ctx, tenantId, roles)
	if err != nil {
		return nil, fmt.Errorf("%w: list menus: %v", ErrSourceUnavailable, err)
	}
	return repo.BuildRecordTree(menus), nil
}
