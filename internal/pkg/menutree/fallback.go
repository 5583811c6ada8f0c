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

// DefaultRecords 菜单源不可用时使用的默认仪表板菜单，每次调用返回新副本
func DefaultRecords() []model.MenuRecord {
	return []model.MenuRecord{
		{
			Path:      "/dashboard",
			Name:      "Dashboard",
			Component: LayoutSentinel,
			Redirect:  "/dashboard/console",
			Meta: model.MenuMeta{
				Title: "仪表板",
				Icon:  "DashboardOutlined",
				Type:  model.MenuTypeDir,
				Sort:  1,
			},
			Children: []model.MenuRecord{
				{
					Path:      "console",
					Name:      "Console",
					Component: "/dashboard/console/console",
					Meta: model.MenuMeta{
						Title: "控制台",
						Icon:  "DashboardOutlined",
						Type:  model.MenuTypeMenu,
						Sort:  1,
					},
				},
			},
		},
	}
}
