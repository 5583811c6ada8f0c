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

import "maps"

const (
	// LayoutSentinel 菜单源中表示公共布局的组件名
	LayoutSentinel = "Layout"
	// LayoutMarker 路由树中的公共布局标记
	LayoutMarker = "LAYOUT"
	// IframeMarker 内嵌页面标记
	IframeMarker = "IFRAME"
	// UntitledTitle 无法推断标题时的兜底值
	UntitledTitle = "未命名"
)

// Tables 静态查找表：组件路径映射、图标表、默认标题字典
// 构建后只读，可被多个 goroutine 共享
type Tables struct {
	Components map[string]string
	Icons      map[string]string
	Titles     map[string]string
}

var defaultComponents = map[string]string{
	"dashboard/index":     "/dashboard/console/console",
	"system/user/index":   "/org/user/user",
	"system/role/index":   "/permission/role/role",
	"system/menu/index":   "/permission/menu/menu",
	"system/dept/index":   "/org/dept/dept",
	"tenant/list/index":   "/tenant/index",
	"tenant/config/index": "/system/config/system",
}

var defaultTitles = map[string]string{
	"dashboard": "仪表板",
	"system":    "系统管理",
	"user":      "用户管理",
	"role":      "角色管理",
	"menu":      "菜单管理",
	"dept":      "部门管理",
	"tenant":    "租户管理",
	"list":      "列表",
	"config":    "配置",
}

var defaultIcons = map[string]string{
	"DashboardOutlined":   "DashboardOutlined",
	"SettingOutlined":     "SettingOutlined",
	"UserOutlined":        "UserOutlined",
	"TeamOutlined":        "TeamOutlined",
	"MenuOutlined":        "MenuOutlined",
	"ApartmentOutlined":   "ApartmentOutlined",
	"AppstoreOutlined":    "AppstoreOutlined",
	"SafetyOutlined":      "SafetyOutlined",
	"ShopOutlined":        "ShopOutlined",
	"ProfileOutlined":     "ProfileOutlined",
	"TableOutlined":       "TableOutlined",
	"ControlOutlined":     "ControlOutlined",
	"ToolOutlined":        "ToolOutlined",
	"FileTextOutlined":    "FileTextOutlined",
	"CheckCircleOutlined": "CheckCircleOutlined",
	"FrownOutlined":       "FrownOutlined",
	"LinkOutlined":        "LinkOutlined",
	"SolutionOutlined":    "SolutionOutlined",
	"dashboard":           "DashboardOutlined",
	"setting":             "SettingOutlined",
	"system":              "SettingOutlined",
	"user":                "UserOutlined",
	"peoples":             "TeamOutlined",
	"tree-table":          "MenuOutlined",
	"tree":                "ApartmentOutlined",
}

// DefaultTables 返回内置查找表的副本
func DefaultTables() *Tables {
	return &Tables{
		Components: maps.Clone(defaultComponents),
		Icons:      maps.Clone(defaultIcons),
		Titles:     maps.Clone(defaultTitles),
	}
}

// Merge 返回叠加 override 之后的新表，原表不变
func (t *Tables) Merge(components, icons, titles map[string]string) *Tables {
	out := &Tables{
		Components: maps.Clone(t.Components),
		Icons:      maps.Clone(t.Icons),
		Titles:     maps.Clone(t.Titles),
	}
	if out.Components == nil {
		out.Components = map[string]string{}
	}
	if out.Icons == nil {
		out.Icons = map[string]string{}
	}
	if out.Titles == nil {
		out.Titles = map[string]string{}
	}
	maps.Copy(out.Components, components)
	maps.Copy(out.Icons, icons)
	maps.Copy(out.Titles, titles)
	return out
}

// Icon 图标名解析，未命中返回空串
func (t *Tables) Icon(name string) string {
	if name == "" {
		return ""
	}
	return t.Icons[name]
}
