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
	"os"
	"path/filepath"
	"testing"

	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModules = []string{
	"../views/org/user/user.vue",
	"../views/dashboard/console/console.vue",
	"../views/dup/page.vue",
	"../views/dup/page.tsx",
	"../views/README",
}

func TestRegistry_Normalize(t *testing.T) {
	reg := NewRegistry(DefaultModuleRoot, testModules)

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"../views/org/user/user.vue"}, reg.Lookup("/org/user/user"))
	assert.Equal(t, []string{"../views/dup/page.tsx", "../views/dup/page.vue"}, reg.Lookup("/dup/page"))
	assert.Empty(t, reg.Lookup("/README"))
	assert.Empty(t, reg.Lookup("/org/user/user.vue"))
}

func TestRegistry_DuplicateKeys(t *testing.T) {
	reg := NewRegistry(DefaultModuleRoot, []string{"../views/a.vue", "../views/a.vue"})
	assert.Equal(t, 1, reg.Len())
	assert.Len(t, reg.Lookup("/a"), 1)
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()

	listFile := filepath.Join(dir, "modules.yaml")
	require.NoError(t, os.WriteFile(listFile, []byte("- ../views/org/user/user.vue\n- ../views/about/index.vue\n"), 0o644))
	reg, err := LoadManifest(listFile, "")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, DefaultModuleRoot, reg.Root())
	assert.Len(t, reg.Lookup("/about/index"), 1)

	objFile := filepath.Join(dir, "modules.json")
	require.NoError(t, os.WriteFile(objFile, []byte(`{"root":"./src/pages","modules":["./src/pages/home.tsx"]}`), 0o644))
	reg, err = LoadManifest(objFile, "")
	require.NoError(t, err)
	assert.Equal(t, "./src/pages", reg.Root())
	assert.Len(t, reg.Lookup("/home"), 1)

	_, err = LoadManifest(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)

	badFile := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("root: ../views\n"), 0o644))
	_, err = LoadManifest(badFile, "")
	assert.Error(t, err)
}

func TestBinder_Bind(t *testing.T) {
	tree := []model.RouteNode{
		{
			Path:      "/org",
			Name:      "Org",
			Component: LayoutMarker,
			Children: []model.RouteNode{
				{Path: "/org/user", Name: "OrgUser", Component: "/org/user/user"},
				{Path: "/org/dup", Name: "OrgDup", Component: "/dup/page"},
				{Path: "/org/missing", Name: "OrgMissing", Component: "/not/there"},
				{Path: "/org/docs", Name: "OrgDocs", Meta: model.RouteMeta{FrameSrc: "https://docs.example.com"}},
				{Path: "/org/group", Name: "OrgGroup"},
			},
		},
		{Path: "/frame", Name: "Frame", Component: IframeMarker},
		{Path: "/anon"},
	}

	bound, report := NewBinder(NewRegistry(DefaultModuleRoot, testModules)).Bind(tree)

	require.Len(t, bound, 3)
	require.NotNil(t, bound[0].Binding)
	assert.Equal(t, model.BindLayout, bound[0].Binding.Kind)

	children := bound[0].Children
	require.Len(t, children, 5)
	require.NotNil(t, children[0].Binding)
	assert.Equal(t, model.BindView, children[0].Binding.Kind)
	assert.Equal(t, "../views/org/user/user.vue", children[0].Binding.Module)
	assert.Nil(t, children[1].Binding)
	assert.Nil(t, children[2].Binding)
	require.NotNil(t, children[3].Binding)
	assert.Equal(t, model.BindIframe, children[3].Binding.Kind)
	assert.Equal(t, IframeMarker, children[3].Component)
	require.NotNil(t, children[4].Binding)
	assert.Equal(t, model.BindParentLayout, children[4].Binding.Kind)

	require.NotNil(t, bound[1].Binding)
	assert.Equal(t, model.BindIframe, bound[1].Binding.Kind)
	assert.Nil(t, bound[2].Binding)

	assert.Equal(t, 5, report.Bound)
	assert.Equal(t, []string{"OrgMissing"}, report.Unresolved)
	assert.Equal(t, map[string][]string{"OrgDup": {"../views/dup/page.tsx", "../views/dup/page.vue"}}, report.Conflicts)

	// input untouched
	assert.Nil(t, tree[0].Binding)
	assert.Empty(t, tree[0].Children[3].Component)
}

func TestBinder_NilRegistry(t *testing.T) {
	bound, report := NewBinder(nil).Bind([]model.RouteNode{{Path: "/a", Name: "A", Component: "/a"}})
	require.Len(t, bound, 1)
	assert.Nil(t, bound[0].Binding)
	assert.Equal(t, []string{"A"}, report.Unresolved)
}
