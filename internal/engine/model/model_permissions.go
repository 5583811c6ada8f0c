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

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Permissions 权限标识列表
// 支持 JSON 数组或逗号分隔字符串两种写法
type Permissions []string

// ParsePermissions 解析逗号分隔的权限标识，空串返回 nil
func ParsePermissions(s string) Permissions {
	var out Permissions
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (p *Permissions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("permissions: %w", err)
		}
		*p = ParsePermissions(s)
		return nil
	}
	var list []string
	if err := sonic.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("permissions: %w", err)
	}
	*p = list
	return nil
}

// ContainsAny 判断是否包含任一给定权限
func (p Permissions) ContainsAny(granted []string) bool {
	for _, want := range p {
		for _, g := range granted {
			if want == g {
				return true
			}
		}
	}
	return false
}

// Clone 返回副本，nil 保持为 nil
func (p Permissions) Clone() Permissions {
	if p == nil {
		return nil
	}
	out := make(Permissions, len(p))
	copy(out, p)
	return out
}
