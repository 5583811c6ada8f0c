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

import "github.com/go-arcade/navtree/internal/engine/model"

// PruneHidden 递归剔除按钮类型与隐藏节点，子节点被全部剔除时置为 nil
func PruneHidden(tree []model.RouteNode) []model.RouteNode {
	out := make([]model.RouteNode, 0, len(tree))
	for _, node := range tree {
		if node.Meta.Type == model.MenuTypeButton || node.Meta.Hidden {
			continue
		}
		if len(node.Children) > 0 {
			node.Children = PruneHidden(node.Children)
			if len(node.Children) == 0 {
				node.Children = nil
			}
		}
		out = append(out, node)
	}
	return out
}

// FilterByPermissions 按权限过滤路由树
// 节点未声明权限、声明的权限与 granted 有交集、或存在保留下来的子节点时保留
// 默认重定向改指向第一个保留下来的子节点，没有子节点时清空
func FilterByPermissions(tree []model.RouteNode, granted []string) []model.RouteNode {
	out := make([]model.RouteNode, 0, len(tree))
	for _, node := range tree {
		var children []model.RouteNode
		if len(node.Children) > 0 {
			children = FilterByPermissions(node.Children, granted)
		}
		allowed := len(node.Meta.Permissions) == 0 || node.Meta.Permissions.ContainsAny(granted)
		if !allowed && len(children) == 0 {
			continue
		}
		if len(children) == 0 {
			children = nil
		}
		node.Children = children
		if node.RedirectDefaulted {
			node.Redirect = ""
			if node.HasChildren() {
				node.Redirect = node.Children[0].Path
			}
		}
		out = append(out, node)
	}
	return out
}

// ExpandKeys 深度优先收集全部菜单 key，去重并保持首次出现的顺序
func ExpandKeys(menus []model.MenuNode) []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	var walk func([]model.MenuNode)
	walk = func(level []model.MenuNode) {
		for i := range level {
			if _, ok := seen[level[i].Key]; !ok {
				seen[level[i].Key] = struct{}{}
				keys = append(keys, level[i].Key)
			}
			walk(level[i].Children)
		}
	}
	walk(menus)
	return keys
}

// FindMenu 深度优先查找 key 对应的菜单节点
func FindMenu(menus []model.MenuNode, key string) (*model.MenuNode, bool) {
	for i := range menus {
		if menus[i].Key == key {
			return &menus[i], true
		}
		if found, ok := FindMenu(menus[i].Children, key); ok {
			return found, true
		}
	}
	return nil, false
}
