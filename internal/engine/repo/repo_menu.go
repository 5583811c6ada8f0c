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

package repo

import (
	"context"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/pkg/database"
	"github.com/go-arcade/navtree/pkg/log"
)

var menuColumns = []string{
	"id", "tenant_id", "parent_id", "name", "title", "path", "component", "icon", "permission",
	"redirect", "active_menu", "frame_src", "menu_type", "sort_order", "visible", "status",
	"always_show", "breadcrumb", "keep_alive",
}

type IMenuRepository interface {
	// ListMenus 返回租户可见的启用菜单（目录和菜单，不含按钮）
	// roleIds 非空时只返回这些角色可访问的菜单
	ListMenus(ctx context.Context, tenantId uint64, roleIds []string) ([]model.Menu, error)
}

type MenuRepo struct {
	database.IDatabase
}

func NewMenuRepo(db database.IDatabase) IMenuRepository {
	return &MenuRepo{
		IDatabase: db,
	}
}

func (r *MenuRepo) ListMenus(ctx context.Context, tenantId uint64, roleIds []string) ([]model.Menu, error) {
	var menus []model.Menu
	query := r.Database().WithContext(ctx).
		Select(menuColumns).
		Where("status = ? AND menu_type IN ?", model.MenuEnabled, []int{model.MenuTypeDir, model.MenuTypeMenu}).
		Where("tenant_id IN ?", []uint64{0, tenantId})
	if len(roleIds) > 0 {
		bound := r.Database().WithContext(ctx).
			Model(&model.RoleMenuBinding{}).
			Select("menu_id").
			Where("role_id IN ? AND is_accessible = ?", roleIds, model.RoleMenuAccessible).
			Where("tenant_id IN ?", []uint64{0, tenantId})
		query = query.Where("id IN (?)", bound)
	}
	err := query.Order("sort_order ASC, id ASC").Find(&menus).Error
	return menus, err
}

// BuildRecordTree 扁平菜单行按 parent_id 组装成树，保持输入顺序
// 父节点不存在的行提升为顶级节点
func BuildRecordTree(menus []model.Menu) []model.MenuRecord {
	if len(menus) == 0 {
		return []model.MenuRecord{}
	}

	present := make(map[uint64]struct{}, len(menus))
	for i := range menus {
		present[menus[i].ID] = struct{}{}
	}

	children := make(map[uint64][]int, len(menus))
	roots := make([]int, 0)
	for i := range menus {
		parent := menus[i].ParentId
		if parent == 0 || parent == menus[i].ID {
			roots = append(roots, i)
			continue
		}
		if _, ok := present[parent]; !ok {
			log.Warnw("menu parent not found, promoted to root", "menuId", menus[i].ID, "parentId", parent)
			roots = append(roots, i)
			continue
		}
		children[parent] = append(children[parent], i)
	}

	visited := make(map[uint64]bool, len(menus))
	var assemble func(idx int) model.MenuRecord
	assemble = func(idx int) model.MenuRecord {
		m := &menus[idx]
		visited[m.ID] = true
		record := m.ToRecord()
		for _, c := range children[m.ID] {
			if visited[menus[c].ID] {
				continue
			}
			record.Children = append(record.Children, assemble(c))
		}
		return record
	}

	out := make([]model.MenuRecord, 0, len(roots))
	for _, idx := range roots {
		out = append(out, assemble(idx))
	}
	for i := range menus {
		if !visited[menus[i].ID] {
			log.Warnw("menu unreachable from any root, skipped", "menuId", menus[i].ID, "parentId", menus[i].ParentId)
		}
	}
	return out
}
