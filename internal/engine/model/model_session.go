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
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"slices"
	"strconv"
)

// Session 一次请求的调用方身份，来自已校验的 token
type Session struct {
	UserId      string   `json:"userId"`
	TenantId    uint64   `json:"tenantId"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	// Token 原始 bearer token，http 菜单源转发使用
	Token string `json:"-"`
}

// Key 路由缓存的会话维度
func (s *Session) Key() string {
	return strconv.FormatUint(s.TenantId, 10) + ":" + s.UserId
}

// Fingerprint 角色与权限的摘要，顺序无关
// 每个元素带长度前缀写入，元素内含分隔符时摘要也不会冲突
func (s *Session) Fingerprint() string {
	h := sha256.New()
	writeSet(h, s.Roles)
	writeSet(h, s.Permissions)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func writeSet(h hash.Hash, items []string) {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var buf [binary.MaxVarintLen64]byte
	h.Write(buf[:binary.PutUvarint(buf[:], uint64(len(sorted)))])
	for _, item := range sorted {
		h.Write(buf[:binary.PutUvarint(buf[:], uint64(len(item)))])
		h.Write([]byte(item))
	}
}
