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

package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/go-arcade/navtree/internal/engine/model"
)

var (
	// ErrSourceUnavailable 菜单源请求失败或返回了无法识别的内容
	ErrSourceUnavailable = errors.New("menu source unavailable")
	// ErrUnsupportedSource 配置了未知的菜单源类型
	ErrUnsupportedSource = errors.New("unsupported menu source")
)

// MenuSource 按会话获取菜单记录树
type MenuSource interface {
	Name() string
	Fetch(ctx context.Context, session *model.Session) ([]model.MenuRecord, error)
}

// payload 兼容 {code, msg, data: {list}}、{code, msg, detail: {list}} 和 {list}
type payload struct {
	Code   *int               `json:"code"`
	Msg    string             `json:"msg"`
	Data   *model.MenuList    `json:"data"`
	Detail *model.MenuList    `json:"detail"`
	List   []model.MenuRecord `json:"list"`
}

// decodeRecords 解析菜单载荷，也接受顶层数组
func decodeRecords(raw []byte) ([]model.MenuRecord, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrSourceUnavailable)
	}
	if raw[0] == '[' {
		var list []model.MenuRecord
		if err := sonic.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		return orEmpty(list), nil
	}

	var p payload
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if p.Code != nil && *p.Code != 0 && *p.Code != 200 {
		return nil, fmt.Errorf("%w: code %d: %s", ErrSourceUnavailable, *p.Code, p.Msg)
	}
	switch {
	case p.Data != nil:
		return orEmpty(p.Data.List), nil
	case p.Detail != nil:
		return orEmpty(p.Detail.List), nil
	case p.List != nil:
		return p.List, nil
	}
	return nil, fmt.Errorf("%w: payload has no menu list", ErrSourceUnavailable)
}

func orEmpty(list []model.MenuRecord) []model.MenuRecord {
	if list == nil {
		return []model.MenuRecord{}
	}
	return list
}
