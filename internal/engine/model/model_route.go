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

package model

// MenuRecord 菜单源返回的菜单描述
// Children 为 nil 表示未提供子节点，空切片表示提供了但为空
type MenuRecord struct {
	Id         int64        `json:"id,omitempty"`
	Path       string       `json:"path"`
	Name       string       `json:"name,omitempty"`
	Component  string       `json:"component,omitempty"`
	Redirect   string       `json:"redirect,omitempty"`
	Hidden     bool         `json:"hidden,omitempty"`
	AlwaysShow bool         `json:"alwaysShow,omitempty"`
	Meta       MenuMeta     `json:"meta"`
	Children   []MenuRecord `json:"children,omitempty"`
}

// MenuMeta 菜单元信息
type MenuMeta struct {
	Title       string      `json:"title,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Permissions Permissions `json:"permissions,omitempty"`
	NoCache     bool        `json:"noCache,omitempty"`
	Breadcrumb  *bool       `json:"breadcrumb,omitempty"` // nil 视为 true
	AlwaysShow  bool        `json:"alwaysShow,omitempty"`
	Hidden      bool        `json:"hidden,omitempty"`
	Type        int         `json:"type,omitempty"` // 1-目录，2-菜单，3-按钮，0 表示由结构推断
	ActiveMenu  string      `json:"activeMenu,omitempty"`
	FrameSrc    string      `json:"frameSrc,omitempty"`
	Sort        int         `json:"sort,omitempty"`
}

// MenuList 菜单源载荷 { list: [...] }
type MenuList struct {
	List []MenuRecord `json:"list"`
}

// RouteMeta 路由元信息
// Icon 为空表示图标表未命中；Permissions 为 nil 序列化为 null
type RouteMeta struct {
	Title       string      `json:"title"`
	Label       string      `json:"label"`
	Icon        string      `json:"icon,omitempty"`
	Permissions Permissions `json:"permissions"`
	Hidden      bool        `json:"hidden"`
	AlwaysShow  bool        `json:"alwaysShow"`
	NoCache     bool        `json:"noCache"`
	Breadcrumb  bool        `json:"breadcrumb"`
	Type        int         `json:"type"`
	ActiveMenu  string      `json:"activeMenu,omitempty"`
	FrameSrc    string      `json:"frameSrc,omitempty"`
	Sort        int         `json:"sort,omitempty"`
}

// RouteNode 路由节点
type RouteNode struct {
	Path      string       `json:"path"`
	Name      string       `json:"name"`
	Component string       `json:"component,omitempty"`
	Redirect  string       `json:"redirect,omitempty"`
	Meta      RouteMeta    `json:"meta"`
	Binding   *ViewBinding `json:"binding,omitempty"`
	Children  []RouteNode  `json:"children,omitempty"`

	// RedirectDefaulted Redirect 由首个子节点推导而来，子节点变化时需要重新推导
	RedirectDefaulted bool `json:"-"`
}

// HasChildren 判断是否存在子节点
func (n *RouteNode) HasChildren() bool {
	return len(n.Children) > 0
}

// BindKind 视图绑定类型
type BindKind string

const (
	BindLayout       BindKind = "layout"       // 公共布局
	BindParentLayout BindKind = "parentLayout" // 透传父级布局
	BindIframe       BindKind = "iframe"       // 内嵌页面
	BindView         BindKind = "view"         // 具体视图模块
)

// ViewBinding 路由节点绑定的视图
type ViewBinding struct {
	Kind   BindKind `json:"kind"`
	Module string   `json:"module,omitempty"` // 仅 view 类型有值，为原始模块键
}

// MenuNode 展示菜单节点
type MenuNode struct {
	Key         string      `json:"key"`
	Label       string      `json:"label"`
	Icon        string      `json:"icon,omitempty"`
	Path        string      `json:"path"`
	Name        string      `json:"name"`
	Component   string      `json:"component,omitempty"`
	Redirect    string      `json:"redirect,omitempty"`
	Title       string      `json:"title"`
	Permissions Permissions `json:"permissions"`
	Hidden      bool        `json:"hidden"`
	AlwaysShow  bool        `json:"alwaysShow"`
	NoCache     bool        `json:"noCache"`
	Breadcrumb  bool        `json:"breadcrumb"`
	Type        int         `json:"type"`
	ActiveMenu  string      `json:"activeMenu,omitempty"`
	Meta        RouteMeta   `json:"meta"`
	Children    []MenuNode  `json:"children,omitempty"` // 为空时恒为 nil
}
