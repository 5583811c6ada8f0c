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
	"os"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"
)

// DefaultModuleRoot 构建产物中视图模块键的公共前缀
const DefaultModuleRoot = "../views"

// Registry 可用视图模块表，构建一次后只读
type Registry struct {
	root  string
	index map[string][]string // 归一化路径 -> 原始模块键
	size  int
}

// Manifest 视图模块清单文件
type Manifest struct {
	Root    string   `json:"root,omitempty"`
	Modules []string `json:"modules"`
}

// NewRegistry 基于模块键列表构建 Registry
// 模块键去掉 root 前缀与最后一个 "." 之后的扩展名后作为匹配路径，无扩展名的键被忽略
func NewRegistry(root string, keys []string) *Registry {
	r := &Registry{root: root, index: make(map[string][]string)}
	for _, key := range keys {
		normalized, ok := normalizeModuleKey(root, key)
		if !ok {
			continue
		}
		if slices.Contains(r.index[normalized], key) {
			continue
		}
		r.index[normalized] = append(r.index[normalized], key)
		r.size++
	}
	for k := range r.index {
		slices.Sort(r.index[k])
	}
	return r
}

// LoadManifest 读取 JSON/YAML 清单；支持 {root, modules} 对象或纯字符串数组
// root 为空时依次使用清单中的 root 与 DefaultModuleRoot
func LoadManifest(path, root string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil || manifest.Modules == nil {
		var keys []string
		if listErr := yaml.Unmarshal(data, &keys); listErr != nil {
			if err == nil {
				err = listErr
			}
			return nil, fmt.Errorf("parse module manifest %s: %w", path, err)
		}
		manifest = Manifest{Modules: keys}
	}

	if root == "" {
		root = manifest.Root
	}
	if root == "" {
		root = DefaultModuleRoot
	}
	return NewRegistry(root, manifest.Modules), nil
}

func normalizeModuleKey(root, key string) (string, bool) {
	k := strings.Replace(key, root, "", 1)
	idx := strings.LastIndex(k, ".")
	if idx < 0 {
		return "", false
	}
	return k[:idx], true
}

// Lookup 返回与组件路径完全匹配的模块键
func (r *Registry) Lookup(component string) []string {
	return r.index[component]
}

// Len 模块数量
func (r *Registry) Len() int {
	return r.size
}

// Root 模块键前缀
func (r *Registry) Root() string {
	return r.root
}
