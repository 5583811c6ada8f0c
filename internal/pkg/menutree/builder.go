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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-arcade/navtree/internal/engine/model"
)

// NameStrategy 路由名称生成策略，每个部署只选一种
type NameStrategy string

const (
	// NameIdBased 使用 "Route<id>"，id 缺失时退化为路径驼峰
	NameIdBased NameStrategy = "id"
	// NamePathBased 使用完整路由路径的驼峰形式
	NamePathBased NameStrategy = "path"
)

// ParseNameStrategy 解析配置中的策略名，空串返回 NameIdBased
func ParseNameStrategy(s string) (NameStrategy, error) {
	switch NameStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", NameIdBased:
		return NameIdBased, nil
	case NamePathBased:
		return NamePathBased, nil
	default:
		return "", fmt.Errorf("unknown name strategy %q", s)
	}
}

// Builder 将单条菜单记录转换为路由节点
type Builder struct {
	resolver *Resolver
	tables   *Tables
	strategy NameStrategy
}

// NewBuilder 创建 Builder
func NewBuilder(tables *Tables, strategy NameStrategy) *Builder {
	return &Builder{
		resolver: NewResolver(tables),
		tables:   tables,
		strategy: strategy,
	}
}

// Build 根据菜单记录与已解析的父节点生成路由节点，不处理子节点
func (b *Builder) Build(record *model.MenuRecord, parent *model.RouteNode) model.RouteNode {
	parentPath := ""
	if parent != nil {
		parentPath = parent.Path
	}
	routePath := JoinPath(parentPath, record.Path)

	component := ""
	if record.Component != "" {
		component = b.resolver.Resolve(record.Component)
	}

	name := record.Name
	if name == "" {
		name = b.routeName(record, routePath)
	}

	title := record.Meta.Title
	if title == "" {
		title = b.defaultTitle(record.Path)
	}

	typ := record.Meta.Type
	if typ == 0 {
		typ = model.MenuTypeMenu
		if record.Children != nil {
			typ = model.MenuTypeDir
		}
	}

	node := model.RouteNode{
		Path:      routePath,
		Name:      name,
		Component: component,
		Meta: model.RouteMeta{
			Title:       title,
			Label:       title,
			Icon:        b.tables.Icon(record.Meta.Icon),
			Permissions: record.Meta.Permissions.Clone(),
			Hidden:      record.Hidden || record.Meta.Hidden,
			AlwaysShow:  record.AlwaysShow || record.Meta.AlwaysShow,
			NoCache:     record.Meta.NoCache,
			Breadcrumb:  record.Meta.Breadcrumb == nil || *record.Meta.Breadcrumb,
			Type:        typ,
			ActiveMenu:  record.Meta.ActiveMenu,
			FrameSrc:    record.Meta.FrameSrc,
			Sort:        record.Meta.Sort,
		},
	}

	switch {
	case record.Redirect != "":
		node.Redirect = record.Redirect
	case len(record.Children) > 0 && (typ == model.MenuTypeDir || isLayout(record.Component)):
		node.Redirect = JoinPath(routePath, record.Children[0].Path)
		node.RedirectDefaulted = true
	}

	return node
}

func (b *Builder) routeName(record *model.MenuRecord, routePath string) string {
	if b.strategy == NamePathBased {
		return camelPath(routePath)
	}
	if record.Id != 0 {
		return "Route" + strconv.FormatInt(record.Id, 10)
	}
	return camelPath(record.Path)
}

// defaultTitle 取最后一个非空路径段查标题字典
func (b *Builder) defaultTitle(p string) string {
	segments := splitPath(p)
	if len(segments) == 0 {
		return UntitledTitle
	}
	last := segments[len(segments)-1]
	if title, ok := b.tables.Titles[last]; ok {
		return title
	}
	return last
}

// JoinPath 拼接父子路由路径，只折叠第一个 "//"；无父路径时补齐前导 "/"
func JoinPath(parent, child string) string {
	if parent == "" {
		if strings.HasPrefix(child, "/") {
			return child
		}
		return "/" + child
	}
	return strings.Replace(parent+"/"+child, "//", "/", 1)
}

func isLayout(component string) bool {
	return component == LayoutSentinel || component == LayoutMarker
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// camelPath "/system/user-list" -> "systemUser-list"
func camelPath(p string) string {
	segments := splitPath(p)
	if len(segments) == 0 {
		return "Root"
	}
	var sb strings.Builder
	for i, s := range segments {
		s = strings.ToLower(s)
		if i == 0 {
			sb.WriteString(s)
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(s[size:])
	}
	return sb.String()
}
