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
	"slices"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/pkg/log"
)

// BindReport 一次绑定的结果统计
type BindReport struct {
	Bound      int                 `json:"bound"`
	Unresolved []string            `json:"unresolved,omitempty"` // 未找到模块的路由名
	Conflicts  map[string][]string `json:"conflicts,omitempty"`  // 路由名 -> 同名候选模块
}

// Binder 将路由节点的组件引用绑定到视图模块
type Binder struct {
	registry *Registry
}

// NewBinder 创建 Binder，registry 为 nil 时所有视图节点均视为未解析
func NewBinder(registry *Registry) *Binder {
	if registry == nil {
		registry = NewRegistry(DefaultModuleRoot, nil)
	}
	return &Binder{registry: registry}
}

// Bind 返回绑定后的新路由树，输入树不被修改
// 多个候选模块时告警且不绑定，找不到模块时静默跳过
func (b *Binder) Bind(tree []model.RouteNode) ([]model.RouteNode, *BindReport) {
	report := &BindReport{}
	return b.bind(tree, report), report
}

func (b *Binder) bind(tree []model.RouteNode, report *BindReport) []model.RouteNode {
	if tree == nil {
		return nil
	}
	out := make([]model.RouteNode, 0, len(tree))
	for _, node := range tree {
		bound := node
		bound.Binding = nil

		if bound.Component == "" && bound.Meta.FrameSrc != "" {
			bound.Component = IframeMarker
		}

		switch {
		case bound.Component == LayoutMarker:
			bound.Binding = &model.ViewBinding{Kind: model.BindLayout}
		case bound.Component == IframeMarker:
			bound.Binding = &model.ViewBinding{Kind: model.BindIframe}
		case bound.Component != "":
			matches := b.registry.Lookup(bound.Component)
			switch len(matches) {
			case 1:
				bound.Binding = &model.ViewBinding{Kind: model.BindView, Module: matches[0]}
			case 0:
				report.Unresolved = append(report.Unresolved, bound.Name)
			default:
				log.Warnw("ambiguous view module, route left unbound",
					"route", bound.Name,
					"component", bound.Component,
					"candidates", matches,
				)
				if report.Conflicts == nil {
					report.Conflicts = make(map[string][]string)
				}
				report.Conflicts[bound.Name] = slices.Clone(matches)
			}
		case bound.Name != "":
			bound.Binding = &model.ViewBinding{Kind: model.BindParentLayout}
		}

		if bound.Binding != nil {
			report.Bound++
		}
		bound.Children = b.bind(node.Children, report)
		out = append(out, bound)
	}
	return out
}
