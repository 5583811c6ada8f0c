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
	"testing"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestJoinPath(t *testing.T) {
	tests := []struct {
		parent, child, want string
	}{
		{"/system", "/user", "/system/user"},
		{"/system", "user", "/system/user"},
		{"/", "user", "/user"},
		{"", "sys", "/sys"},
		{"", "/sys", "/sys"},
		{"/a/", "/b", "/a//b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.parent, tt.child), "JoinPath(%q, %q)", tt.parent, tt.child)
	}
}

func TestBuilder_Path(t *testing.T) {
	b := NewBuilder(DefaultTables(), NameIdBased)
	parent := &model.RouteNode{Path: "/system"}

	node := b.Build(&model.MenuRecord{Id: 2, Path: "/user"}, parent)
	assert.Equal(t, "/system/user", node.Path)

	root := b.Build(&model.MenuRecord{Id: 1, Path: "sys"}, nil)
	assert.Equal(t, "/sys", root.Path)
}

func TestBuilder_Name(t *testing.T) {
	tables := DefaultTables()

	t.Run("explicit name wins", func(t *testing.T) {
		node := NewBuilder(tables, NameIdBased).Build(&model.MenuRecord{Id: 7, Path: "/a", Name: "Alpha"}, nil)
		assert.Equal(t, "Alpha", node.Name)
	})
	t.Run("id based", func(t *testing.T) {
		node := NewBuilder(tables, NameIdBased).Build(&model.MenuRecord{Id: 12, Path: "/a"}, nil)
		assert.Equal(t, "Route12", node.Name)
	})
	t.Run("id based without id falls back to record path", func(t *testing.T) {
		node := NewBuilder(tables, NameIdBased).Build(&model.MenuRecord{Path: "/System/USER"}, nil)
		assert.Equal(t, "systemUser", node.Name)
	})
	t.Run("path based uses joined path", func(t *testing.T) {
		parent := &model.RouteNode{Path: "/sys"}
		node := NewBuilder(tables, NamePathBased).Build(&model.MenuRecord{Id: 3, Path: "user-list"}, parent)
		assert.Equal(t, "sysUser-list", node.Name)
	})
}

func TestParseNameStrategy(t *testing.T) {
	s, err := ParseNameStrategy("")
	require.NoError(t, err)
	assert.Equal(t, NameIdBased, s)

	s, err = ParseNameStrategy("PATH")
	require.NoError(t, err)
	assert.Equal(t, NamePathBased, s)

	_, err = ParseNameStrategy("random")
	assert.Error(t, err)
}

func TestBuilder_Title(t *testing.T) {
	b := NewBuilder(DefaultTables(), NameIdBased)

	tests := []struct {
		name   string
		record model.MenuRecord
		want   string
	}{
		{"explicit title", model.MenuRecord{Path: "/dashboard", Meta: model.MenuMeta{Title: "首页"}}, "首页"},
		{"dictionary", model.MenuRecord{Path: "/dashboard"}, "仪表板"},
		{"dictionary uses last segment", model.MenuRecord{Path: "/tenant/config/"}, "配置"},
		{"raw segment", model.MenuRecord{Path: "/report/weekly"}, "weekly"},
		{"untitled", model.MenuRecord{Path: "/"}, UntitledTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := b.Build(&tt.record, nil)
			assert.Equal(t, tt.want, node.Meta.Title)
			assert.Equal(t, tt.want, node.Meta.Label)
		})
	}
}

func TestBuilder_MetaDefaults(t *testing.T) {
	b := NewBuilder(DefaultTables(), NameIdBased)

	node := b.Build(&model.MenuRecord{Id: 1, Path: "/a", Meta: model.MenuMeta{Icon: "NoSuchIcon"}}, nil)
	assert.Empty(t, node.Meta.Icon)
	assert.Nil(t, node.Meta.Permissions)
	assert.False(t, node.Meta.Hidden)
	assert.False(t, node.Meta.AlwaysShow)
	assert.False(t, node.Meta.NoCache)
	assert.True(t, node.Meta.Breadcrumb)
	assert.Equal(t, model.MenuTypeMenu, node.Meta.Type)

	node = b.Build(&model.MenuRecord{
		Id:         2,
		Path:       "/b",
		Hidden:     true,
		AlwaysShow: true,
		Meta: model.MenuMeta{
			Icon:        "DashboardOutlined",
			Permissions: model.Permissions{"sys:b:view"},
			NoCache:     true,
			Breadcrumb:  boolPtr(false),
		},
	}, nil)
	assert.Equal(t, "DashboardOutlined", node.Meta.Icon)
	assert.Equal(t, model.Permissions{"sys:b:view"}, node.Meta.Permissions)
	assert.True(t, node.Meta.Hidden)
	assert.True(t, node.Meta.AlwaysShow)
	assert.True(t, node.Meta.NoCache)
	assert.False(t, node.Meta.Breadcrumb)

	node = b.Build(&model.MenuRecord{Id: 3, Path: "/c", Meta: model.MenuMeta{Breadcrumb: boolPtr(true), Hidden: true, AlwaysShow: true}}, nil)
	assert.True(t, node.Meta.Breadcrumb)
	assert.True(t, node.Meta.Hidden)
	assert.True(t, node.Meta.AlwaysShow)
}

func TestBuilder_Type(t *testing.T) {
	b := NewBuilder(DefaultTables(), NameIdBased)

	leaf := b.Build(&model.MenuRecord{Id: 1, Path: "/leaf"}, nil)
	assert.Equal(t, model.MenuTypeMenu, leaf.Meta.Type)

	dir := b.Build(&model.MenuRecord{Id: 2, Path: "/dir", Children: []model.MenuRecord{}}, nil)
	assert.Equal(t, model.MenuTypeDir, dir.Meta.Type)

	button := b.Build(&model.MenuRecord{Id: 3, Path: "/btn", Meta: model.MenuMeta{Type: model.MenuTypeButton}}, nil)
	assert.Equal(t, model.MenuTypeButton, button.Meta.Type)
}

func TestBuilder_Redirect(t *testing.T) {
	b := NewBuilder(DefaultTables(), NameIdBased)
	children := []model.MenuRecord{{Id: 11, Path: "first"}, {Id: 12, Path: "second"}}

	t.Run("directory redirects to first child", func(t *testing.T) {
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/sys", Children: children}, nil)
		assert.Equal(t, "/sys/first", node.Redirect)
		assert.True(t, node.RedirectDefaulted)
	})
	t.Run("untyped parent with a view component counts as directory", func(t *testing.T) {
		// 未声明 type 时按结构推断为目录，非 Layout 组件的父节点同样获得默认重定向
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/report", Component: "report/index", Children: children}, nil)
		assert.Equal(t, model.MenuTypeDir, node.Meta.Type)
		assert.Equal(t, "/report/first", node.Redirect)
	})
	t.Run("explicit redirect kept", func(t *testing.T) {
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/sys", Redirect: "/sys/second", Children: children}, nil)
		assert.Equal(t, "/sys/second", node.Redirect)
		assert.False(t, node.RedirectDefaulted)
	})
	t.Run("menu type override without layout has no redirect", func(t *testing.T) {
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/sys", Meta: model.MenuMeta{Type: model.MenuTypeMenu}, Children: children}, nil)
		assert.Empty(t, node.Redirect)
	})
	t.Run("layout component redirects", func(t *testing.T) {
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/sys", Component: "Layout", Meta: model.MenuMeta{Type: model.MenuTypeMenu}, Children: children}, nil)
		assert.Equal(t, "/sys/first", node.Redirect)
		assert.Equal(t, LayoutMarker, node.Component)
	})
	t.Run("no children no redirect", func(t *testing.T) {
		node := b.Build(&model.MenuRecord{Id: 1, Path: "/sys", Children: []model.MenuRecord{}}, nil)
		assert.Empty(t, node.Redirect)
	})
}
