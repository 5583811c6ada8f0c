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

// Menu 菜单表
type Menu struct {
	BaseModel
	TenantId   uint64 `gorm:"column:tenant_id;index;default:0" json:"tenantId"`  // 租户ID（0 表示平台公共菜单）
	ParentId   uint64 `gorm:"column:parent_id;index;default:0" json:"parentId"`  // 父菜单ID（0 表示顶级菜单）
	Name       string `gorm:"column:name" json:"name"`                           // 路由名称
	Title      string `gorm:"column:title;not null" json:"title"`                // 菜单标题
	Path       string `gorm:"column:path" json:"path"`                           // 路由路径（相对父级）
	Component  string `gorm:"column:component" json:"component"`                 // 组件路径
	Icon       string `gorm:"column:icon" json:"icon"`                           // 图标名称
	Permission string `gorm:"column:permission" json:"permission"`               // 权限标识（逗号分隔）
	Redirect   string `gorm:"column:redirect" json:"redirect"`                   // 重定向地址
	ActiveMenu string `gorm:"column:active_menu" json:"activeMenu"`              // 高亮菜单路径
	FrameSrc   string `gorm:"column:frame_src" json:"frameSrc"`                  // 内嵌页面地址
	MenuType   int    `gorm:"column:menu_type;default:2" json:"menuType"`        // 菜单类型：1-目录，2-菜单，3-按钮
	SortOrder  int    `gorm:"column:sort_order;default:0" json:"sortOrder"`      // 排序（数值越小越靠前）
	Visible    int    `gorm:"column:visible;default:1" json:"visible"`           // 是否可见：0-隐藏，1-显示
	Status     int    `gorm:"column:status;default:1" json:"status"`             // 状态：0-禁用，1-启用
	AlwaysShow int    `gorm:"column:always_show;default:0" json:"alwaysShow"`    // 是否总是显示：0-否，1-是
	Breadcrumb int    `gorm:"column:breadcrumb;default:1" json:"breadcrumb"`     // 是否显示面包屑：0-隐藏，1-显示
	KeepAlive  int    `gorm:"column:keep_alive;default:1" json:"keepAlive"`      // 是否缓存页面：0-否，1-是
	Remark     string `gorm:"column:remark" json:"remark"`                       // 备注
}

func (Menu) TableName() string {
	return "t_sys_menu"
}

// 菜单类型常量
const (
	MenuTypeDir    = 1 // 目录
	MenuTypeMenu   = 2 // 菜单
	MenuTypeButton = 3 // 按钮
)

// 菜单可见性常量
const (
	MenuVisible   = 1 // 可见
	MenuInvisible = 0 // 不可见
)

// 菜单启用状态常量
const (
	MenuEnabled  = 1 // 启用
	MenuDisabled = 0 // 禁用
)

// ToRecord 转换为菜单源记录（不含子节点）
func (m *Menu) ToRecord() MenuRecord {
	breadcrumb := m.Breadcrumb != 0
	return MenuRecord{
		Id:         int64(m.ID),
		Path:       m.Path,
		Name:       m.Name,
		Component:  m.Component,
		Redirect:   m.Redirect,
		Hidden:     m.Visible == MenuInvisible,
		AlwaysShow: m.AlwaysShow == 1,
		Meta: MenuMeta{
			Title:       m.Title,
			Icon:        m.Icon,
			Permissions: ParsePermissions(m.Permission),
			NoCache:     m.KeepAlive == 0,
			Breadcrumb:  &breadcrumb,
			Type:        m.MenuType,
			ActiveMenu:  m.ActiveMenu,
			FrameSrc:    m.FrameSrc,
			Sort:        m.SortOrder,
		},
	}
}
