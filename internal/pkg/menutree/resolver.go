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

import "strings"

// Resolver 将菜单源中的逻辑组件名映射为视图模块路径
type Resolver struct {
	components map[string]string
}

// NewResolver 基于组件映射表创建 Resolver
func NewResolver(tables *Tables) *Resolver {
	return &Resolver{components: tables.Components}
}

// Resolve 组件路径解析
//   - "Layout" / "LAYOUT" 返回布局标记，"IFRAME" 原样返回
//   - 命中映射表时原样返回映射值
//   - 否则补齐前导 "/" 并去掉 ".vue" 后缀
func (r *Resolver) Resolve(logical string) string {
	switch logical {
	case LayoutSentinel, LayoutMarker:
		return LayoutMarker
	case IframeMarker:
		return IframeMarker
	}
	if mapped, ok := r.components[logical]; ok {
		return mapped
	}
	p := logical
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(p, ".vue")
}
