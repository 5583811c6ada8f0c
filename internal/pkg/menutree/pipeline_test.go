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
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_UserManagementScenario(t *testing.T) {
	records := []model.MenuRecord{
		{
			Id:        1,
			Path:      "/sys",
			Component: "Layout",
			Meta:      model.MenuMeta{Title: "系统管理", Icon: "SettingOutlined"},
			Children: []model.MenuRecord{
				{Id: 2, Path: "user", Component: "system/user/index", Meta: model.MenuMeta{Title: "用户管理", Icon: "UserOutlined"}},
			},
		},
	}
	p := NewPipeline(Options{Registry: NewRegistry(DefaultModuleRoot, testModules)})

	res := p.Run(records)

	require.Len(t, res.Routes, 1)
	require.Len(t, res.Routes[0].Children, 1)
	user := res.Routes[0].Children[0]
	assert.Equal(t, "/sys/user", user.Path)
	assert.Equal(t, "/org/user/user", user.Component)
	require.NotNil(t, user.Binding)
	assert.Equal(t, "../views/org/user/user.vue", user.Binding.Module)

	require.Len(t, res.Menus, 1)
	assert.Equal(t, "用户管理", res.Menus[0].Label)
	assert.Equal(t, "SettingOutlined", res.Menus[0].Icon)
	assert.Equal(t, 2, res.Report.Bound)
}

func TestPipeline_RunFiltered(t *testing.T) {
	p := NewPipeline(Options{})
	res := p.RunFiltered(sampleRecords(), []string{"sys:role:list"})

	require.Len(t, res.Routes, 3)
	sys := res.Routes[1]
	for _, child := range sys.Children {
		assert.NotEqual(t, "/system/user", child.Path)
	}
	assert.Equal(t, "/system/role", sys.Redirect)

	var keys []string
	for _, m := range res.Menus {
		keys = append(keys, m.Key)
	}
	assert.Contains(t, keys, "Route5")
}

func TestPipeline_NoEmptyChildrenInOutput(t *testing.T) {
	records := sampleRecords()
	records = append(records, model.MenuRecord{Id: 20, Path: "/empty", Children: []model.MenuRecord{}})

	res := NewPipeline(Options{}).Run(records)
	assertNoEmptyChildren(t, res.Menus)

	data, err := json.Marshal(res.Menus)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), `"children":[]`))
}
