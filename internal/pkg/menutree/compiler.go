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

package menutree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-arcade/navtree/internal/engine/model"
)

// CollapseRule 根目录折叠规则
type CollapseRule string

const (
	// CollapseSingleChild alwaysShow 不为 true 且过滤后恰好剩一个子节点时，用该子节点替换目录
	CollapseSingleChild CollapseRule = "single-child"
	// CollapseEmptyChildren 仅当子节点列表存在且为空时视为根节点；没有可提升的子节点，因此从不折叠
	CollapseEmptyChildren CollapseRule = "empty-children"
)

// ParseCollapseRule 解析配置中的规则名，空串返回 CollapseSingleChild
func ParseCollapseRule(s string) (CollapseRule, error) {
	switch CollapseRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollapseSingleChild:
		return CollapseSingleChild, nil
	case CollapseEmptyChildren:
		return CollapseEmptyChildren, nil
	default:
		return "", fmt.Errorf("unknown collapse rule %q", s)
	}
}

// Location 混合菜单位置
type Location string

const (
	LocationHeader Location = "header"
	LocationSide   Location = "side"
)

// systemPaths 不出现在菜单中的系统路由
var systemPaths = []string{"/:path(.*)*", "/", "/redirect", "/login"}

// FilterRouter 过滤单层路由：去掉隐藏节点以及通配、根、登录、重定向路由
func FilterRouter(tree []model.RouteNode) []model.RouteNode {
	out := make([]model.RouteNode, 0, len(tree))
	for _, node := range tree {
		if node.Meta.Hidden || slices.Contains(systemPaths, node.Path) {
			continue
		}
		out = append(out, node)
	}
	return out
}

// Compiler 将路由树编译为展示菜单树
type Compiler struct {
	rule CollapseRule
}

// NewCompiler 创建 Compiler
func NewCompiler(rule CollapseRule) *Compiler {
	if rule == "" {
		rule = CollapseSingleChild
	}
	return &Compiler{rule: rule}
}

// Compile 先剔除按钮与隐藏节点，再逐层过滤、折叠并生成菜单
// 返回的菜单节点不含空 children
func (c *Compiler) Compile(tree []model.RouteNode) []model.MenuNode {
	return c.compile(PruneHidden(tree))
}

func (c *Compiler) compile(level []model.RouteNode) []model.MenuNode {
	filtered := FilterRouter(level)
	menus := make([]model.MenuNode, 0, len(filtered))
	for i := range filtered {
		item := &filtered[i]
		info, collapsed := c.promote(item)

		icon := info.Meta.Icon
		if collapsed {
			icon = item.Meta.Icon
		}
		menu := toMenu(info, icon)

		if len(info.Children) > 0 {
			if children := c.compile(info.Children); len(children) > 0 {
				menu.Children = children
			}
		}
		menus = append(menus, menu)
	}
	return menus
}

// promote 判断目录是否需要折叠，返回用于生成菜单的节点
func (c *Compiler) promote(item *model.RouteNode) (*model.RouteNode, bool) {
	if item.Meta.AlwaysShow {
		return item, false
	}
	switch c.rule {
	case CollapseEmptyChildren:
		return item, false
	default:
		visible := FilterRouter(item.Children)
		if len(visible) == 1 {
			return &visible[0], true
		}
		return item, false
	}
}

// CompileMix 混合菜单：header 返回不含子节点的顶级菜单，side 返回名称为 name 的顶级菜单及其子菜单
// header 中被折叠的目录使用子节点自身的图标
func (c *Compiler) CompileMix(tree []model.RouteNode, name string, location Location) []model.MenuNode {
	level := FilterRouter(PruneHidden(tree))
	if location == LocationHeader {
		menus := make([]model.MenuNode, 0, len(level))
		for i := range level {
			info, _ := c.promote(&level[i])
			menus = append(menus, toMenu(info, info.Meta.Icon))
		}
		return menus
	}

	var selected []model.RouteNode
	for _, node := range level {
		if node.Name == name {
			selected = append(selected, node)
		}
	}
	return c.compile(selected)
}

func toMenu(info *model.RouteNode, icon string) model.MenuNode {
	return model.MenuNode{
		Key:         info.Name,
		Label:       info.Meta.Title,
		Icon:        icon,
		Path:        info.Path,
		Name:        info.Name,
		Component:   info.Component,
		Redirect:    info.Redirect,
		Title:       info.Meta.Title,
		Permissions: info.Meta.Permissions.Clone(),
		Hidden:      info.Meta.Hidden,
		AlwaysShow:  info.Meta.AlwaysShow,
		NoCache:     info.Meta.NoCache,
		Breadcrumb:  info.Meta.Breadcrumb,
		Type:        info.Meta.Type,
		ActiveMenu:  info.Meta.ActiveMenu,
		Meta:        info.Meta,
	}
}
