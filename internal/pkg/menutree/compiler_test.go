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

func route(path, name, title string, children ...model.RouteNode) model.RouteNode {
	n := model.RouteNode{Path: path, Name: name, Meta: model.RouteMeta{Title: title, Label: title, Breadcrumb: true, Type: model.MenuTypeMenu}}
	if len(children) > 0 {
		n.Meta.Type = model.MenuTypeDir
		n.Children = children
	}
	return n
}

func hidden(n model.RouteNode) model.RouteNode {
	n.Meta.Hidden = true
	return n
}

func assertNoEmptyChildren(t *testing.T, menus []model.MenuNode) {
	t.Helper()
	for i := range menus {
		if menus[i].Children != nil {
			assert.NotEmpty(t, menus[i].Children, "menu %q has empty children", menus[i].Key)
		}
		assertNoEmptyChildren(t, menus[i].Children)
	}
}

func TestFilterRouter(t *testing.T) {
	tree := []model.RouteNode{
		route("/:path(.*)*", "NotFound", "404"),
		route("/", "Root", "root"),
		route("/redirect", "Redirect", "redirect"),
		route("/login", "Login", "login"),
		hidden(route("/secret", "Secret", "secret")),
		route("/system", "System", "系统管理"),
	}

	out := FilterRouter(tree)
	require.Len(t, out, 1)
	assert.Equal(t, "System", out[0].Name)
	assert.Len(t, tree, 6)
}

func TestCompiler_CollapseSingleChild(t *testing.T) {
	sys := route("/sys", "Sys", "系统管理", route("/sys/user", "SysUser", "用户管理"))
	sys.Meta.Icon = "SettingOutlined"
	sys.Children[0].Meta.Icon = "UserOutlined"

	menus := NewCompiler(CollapseSingleChild).Compile([]model.RouteNode{sys})

	require.Len(t, menus, 1)
	assert.Equal(t, "用户管理", menus[0].Label)
	assert.Equal(t, "SysUser", menus[0].Key)
	assert.Equal(t, "/sys/user", menus[0].Path)
	assert.Equal(t, "SettingOutlined", menus[0].Icon)
	assert.Nil(t, menus[0].Children)
}

func TestCompiler_NoCollapse(t *testing.T) {
	t.Run("always show", func(t *testing.T) {
		sys := route("/sys", "Sys", "系统管理", route("/sys/user", "SysUser", "用户管理"))
		sys.Meta.AlwaysShow = true

		menus := NewCompiler(CollapseSingleChild).Compile([]model.RouteNode{sys})
		require.Len(t, menus, 1)
		assert.Equal(t, "系统管理", menus[0].Label)
		require.Len(t, menus[0].Children, 1)
		assert.Equal(t, "用户管理", menus[0].Children[0].Label)
	})

	t.Run("two children", func(t *testing.T) {
		sys := route("/sys", "Sys", "系统管理",
			route("/sys/user", "SysUser", "用户管理"),
			route("/sys/role", "SysRole", "角色管理"),
		)
		menus := NewCompiler(CollapseSingleChild).Compile([]model.RouteNode{sys})
		require.Len(t, menus, 1)
		assert.Equal(t, "Sys", menus[0].Key)
		require.Len(t, menus[0].Children, 2)
		assert.Equal(t, "SysUser", menus[0].Children[0].Key)
		assert.Equal(t, "SysRole", menus[0].Children[1].Key)
	})

	t.Run("empty children rule", func(t *testing.T) {
		sys := route("/sys", "Sys", "系统管理", route("/sys/user", "SysUser", "用户管理"))
		menus := NewCompiler(CollapseEmptyChildren).Compile([]model.RouteNode{sys})
		require.Len(t, menus, 1)
		assert.Equal(t, "Sys", menus[0].Key)
		require.Len(t, menus[0].Children, 1)
	})
}

func TestCompiler_HiddenAndButtons(t *testing.T) {
	button := route("/sys/user/add", "SysUserAdd", "新增")
	button.Meta.Type = model.MenuTypeButton

	sys := route("/sys", "Sys", "系统管理",
		route("/sys/user", "SysUser", "用户管理", button),
		hidden(route("/sys/role", "SysRole", "角色管理")),
	)
	tree := []model.RouteNode{sys, route("/login", "Login", "登录")}

	menus := NewCompiler(CollapseSingleChild).Compile(tree)

	require.Len(t, menus, 1)
	assert.Equal(t, "SysUser", menus[0].Key)
	assert.Nil(t, menus[0].Children)
	assertNoEmptyChildren(t, menus)

	// input untouched
	assert.Len(t, tree[0].Children, 2)
	assert.Len(t, tree[0].Children[0].Children, 1)
}

func TestCompiler_AllChildrenHidden(t *testing.T) {
	sys := route("/sys", "Sys", "系统管理",
		hidden(route("/sys/user", "SysUser", "用户管理")),
		hidden(route("/sys/role", "SysRole", "角色管理")),
	)
	menus := NewCompiler(CollapseSingleChild).Compile([]model.RouteNode{sys})

	require.Len(t, menus, 1)
	assert.Equal(t, "Sys", menus[0].Key)
	assert.Nil(t, menus[0].Children)
}

func TestCompiler_FlattenedFields(t *testing.T) {
	leaf := route("/about", "About", "关于")
	leaf.Component = "/about/index"
	leaf.Meta.Permissions = model.Permissions{"about:view"}
	leaf.Meta.NoCache = true

	menus := NewCompiler("").Compile([]model.RouteNode{leaf})
	require.Len(t, menus, 1)
	m := menus[0]
	assert.Equal(t, "About", m.Key)
	assert.Equal(t, "About", m.Name)
	assert.Equal(t, "关于", m.Label)
	assert.Equal(t, "关于", m.Title)
	assert.Equal(t, "/about/index", m.Component)
	assert.Equal(t, model.Permissions{"about:view"}, m.Permissions)
	assert.True(t, m.NoCache)
	assert.True(t, m.Breadcrumb)
	assert.Equal(t, leaf.Meta, m.Meta)
}

func TestCompiler_CompileMix(t *testing.T) {
	tree := []model.RouteNode{
		route("/dashboard", "Dashboard", "仪表板", route("/dashboard/console", "Console", "控制台")),
		route("/sys", "Sys", "系统管理",
			route("/sys/user", "SysUser", "用户管理"),
			route("/sys/role", "SysRole", "角色管理"),
		),
	}
	tree[0].Meta.Icon = "DashboardOutlined"
	tree[0].Children[0].Meta.Icon = "ConsoleOutlined"
	tree[1].Meta.Icon = "SettingOutlined"
	c := NewCompiler(CollapseSingleChild)

	header := c.CompileMix(tree, "", LocationHeader)
	require.Len(t, header, 2)
	assert.Equal(t, "Console", header[0].Key)
	assert.Equal(t, "ConsoleOutlined", header[0].Icon)
	assert.Equal(t, "Sys", header[1].Key)
	assert.Equal(t, "SettingOutlined", header[1].Icon)
	assert.Nil(t, header[1].Children)

	side := c.CompileMix(tree, "Sys", LocationSide)
	require.Len(t, side, 1)
	assert.Equal(t, "Sys", side[0].Key)
	assert.Len(t, side[0].Children, 2)

	// 侧边菜单与 Compile 一致，折叠时沿用目录图标
	side = c.CompileMix(tree, "Dashboard", LocationSide)
	require.Len(t, side, 1)
	assert.Equal(t, "Console", side[0].Key)
	assert.Equal(t, "DashboardOutlined", side[0].Icon)

	assert.Empty(t, c.CompileMix(tree, "Nope", LocationSide))
}

func TestParseCollapseRule(t *testing.T) {
	r, err := ParseCollapseRule("")
	require.NoError(t, err)
	assert.Equal(t, CollapseSingleChild, r)

	r, err = ParseCollapseRule("empty-children")
	require.NoError(t, err)
	assert.Equal(t, CollapseEmptyChildren, r)

	_, err = ParseCollapseRule("always")
	assert.Error(t, err)
}
