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

// Options 编译流水线参数
type Options struct {
	Tables       *Tables
	NameStrategy NameStrategy
	CollapseRule CollapseRule
	Registry     *Registry
}

// Result 一次编译的产物
type Result struct {
	Routes []model.RouteNode `json:"routes"`
	Menus  []model.MenuNode  `json:"menus"`
	Report *BindReport       `json:"report"`
}

// Pipeline generate -> bind -> (permission filter) -> compile
// 无内部可变状态，可并发使用
type Pipeline struct {
	generator *Generator
	binder    *Binder
	compiler  *Compiler
}

// NewPipeline 创建 Pipeline，未设置的参数使用默认值
func NewPipeline(opts Options) *Pipeline {
	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	strategy := opts.NameStrategy
	if strategy == "" {
		strategy = NameIdBased
	}
	return &Pipeline{
		generator: NewGenerator(tables, strategy),
		binder:    NewBinder(opts.Registry),
		compiler:  NewCompiler(opts.CollapseRule),
	}
}

// Run 不做权限过滤
func (p *Pipeline) Run(records []model.MenuRecord) *Result {
	routes, report := p.binder.Bind(p.generator.Generate(records))
	return &Result{
		Routes: routes,
		Menus:  p.compiler.Compile(routes),
		Report: report,
	}
}

// RunFiltered 按 granted 权限过滤路由树后再编译菜单
func (p *Pipeline) RunFiltered(records []model.MenuRecord, granted []string) *Result {
	routes, report := p.binder.Bind(p.generator.Generate(records))
	routes = FilterByPermissions(routes, granted)
	return &Result{
		Routes: routes,
		Menus:  p.compiler.Compile(routes),
		Report: report,
	}
}

// Compiler 返回流水线使用的 Compiler
func (p *Pipeline) Compiler() *Compiler {
	return p.compiler
}
