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

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/pkg/log"
)

// Generator 递归生成路由树
type Generator struct {
	builder *Builder
}

// NewGenerator 创建 Generator
func NewGenerator(tables *Tables, strategy NameStrategy) *Generator {
	return &Generator{builder: NewBuilder(tables, strategy)}
}

// Generate 按原有顺序生成路由树，同一次生成内路由名称唯一
func (g *Generator) Generate(records []model.MenuRecord) []model.RouteNode {
	seen := make(map[string]int)
	return g.generate(records, nil, seen)
}

func (g *Generator) generate(records []model.MenuRecord, parent *model.RouteNode, seen map[string]int) []model.RouteNode {
	routes := make([]model.RouteNode, 0, len(records))
	for i := range records {
		node := g.builder.Build(&records[i], parent)
		node.Name = uniqueName(node.Name, node.Path, seen)
		if len(records[i].Children) > 0 {
			node.Children = g.generate(records[i].Children, &node, seen)
		}
		routes = append(routes, node)
	}
	return routes
}

func uniqueName(name, routePath string, seen map[string]int) string {
	if _, dup := seen[name]; !dup {
		seen[name] = 1
		return name
	}
	for {
		seen[name]++
		candidate := fmt.Sprintf("%s_%d", name, seen[name])
		if _, taken := seen[candidate]; taken {
			continue
		}
		seen[candidate] = 1
		log.Warnw("duplicate route name, renamed",
			"name", name,
			"renamed", candidate,
			"path", routePath,
		)
		return candidate
	}
}
