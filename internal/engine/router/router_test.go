package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/internal/engine/service"
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/http/jwt"
	"github.com/go-arcade/navtree/pkg/metrics"
	"github.com/go-arcade/navtree/pkg/shutdown"
)

const secret = "router-test-secret"

type fixedSource struct {
	records []model.MenuRecord
}

func (s *fixedSource) Name() string { return "fixed" }

func (s *fixedSource) Fetch(context.Context, *model.Session) ([]model.MenuRecord, error) {
	return s.records, nil
}

type envelope struct {
	Code   int             `json:"code"`
	Detail json.RawMessage `json:"detail"`
	Msg    string          `json:"msg"`
}

func records() []model.MenuRecord {
	return []model.MenuRecord{
		{
			Id:        1,
			Path:      "/system",
			Component: "Layout",
			Meta:      model.MenuMeta{Title: "系统管理", Icon: "setting"},
			Children: []model.MenuRecord{
				{Id: 2, Path: "user", Component: "system/user/index", Meta: model.MenuMeta{Title: "用户管理", Permissions: model.Permissions{"sys:user:list"}}},
				{Id: 3, Path: "role", Component: "system/role/index", Meta: model.MenuMeta{Title: "角色管理", Permissions: model.Permissions{"sys:role:list"}}},
			},
		},
		{Id: 4, Path: "/dashboard", Component: "dashboard/index", Meta: model.MenuMeta{Title: "仪表板", Icon: "dashboard"}},
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestRouter(t, shutdown.NewManager()).Router()
}

func newTestRouter(t *testing.T, sm *shutdown.Manager) *Router {
	t.Helper()
	httpConf := &http.Http{ExposeMetrics: true, Auth: http.Auth{SecretKey: secret}}
	httpConf.SetDefaults()

	menuConf := &config.MenuConfig{Source: config.SourceFile, File: "menus.yaml"}
	menuConf.SetDefaults()

	m := metrics.NewMetrics()
	store := cache.NewHybridCache(cache.NewFastCache(cache.FastCacheConfig{}), nil, cache.HybridCacheConfig{})
	routes, err := service.NewRouteService(&fixedSource{records: records()}, store, m, menuConf)
	require.NoError(t, err)

	return NewRouter(httpConf, metrics.MetricsConfig{Path: "/metrics"}, m, routes, sm)
}

func token(t *testing.T, permissions ...string) string {
	t.Helper()
	tk, err := jwt.GenToken(jwt.AuthClaims{UserId: "u-1", TenantId: 2, Permissions: permissions}, []byte(secret), "navtree", time.Minute)
	require.NoError(t, err)
	return tk
}

func do(t *testing.T, app *fiber.App, method, target, tk, body string) envelope {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if tk != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tk)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out envelope
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return out
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRouter_HealthDraining(t *testing.T) {
	sm := shutdown.NewManager()
	app := newTestRouter(t, sm).Router()
	sm.Shutdown()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRouter_NotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_Routers(t *testing.T) {
	app := newTestApp(t)

	t.Run("missing token", func(t *testing.T) {
		out := do(t, app, fiber.MethodGet, "/api/menu/routers", "", "")
		assert.Equal(t, http.TokenBeEmpty.Code, out.Code)
	})

	t.Run("filtered by permission", func(t *testing.T) {
		out := do(t, app, fiber.MethodGet, "/api/menu/routers", token(t, "sys:user:list"), "")
		require.Equal(t, http.Success.Code, out.Code)

		var detail struct {
			PassID   string            `json:"passId"`
			Fallback bool              `json:"fallback"`
			List     []model.RouteNode `json:"list"`
		}
		require.NoError(t, sonic.Unmarshal(out.Detail, &detail))
		assert.NotEmpty(t, detail.PassID)
		assert.False(t, detail.Fallback)
		require.Len(t, detail.List, 2)
		require.Len(t, detail.List[0].Children, 1)
		assert.Equal(t, "/system/user", detail.List[0].Children[0].Path)
		assert.Equal(t, "/dashboard/console/console", detail.List[1].Component)
	})
}

func TestRouter_Menus(t *testing.T) {
	app := newTestApp(t)
	tk := token(t, "*")

	out := do(t, app, fiber.MethodGet, "/api/menu/menus", tk, "")
	require.Equal(t, http.Success.Code, out.Code)
	var menus struct {
		List []model.MenuNode `json:"list"`
	}
	require.NoError(t, sonic.Unmarshal(out.Detail, &menus))
	require.Len(t, menus.List, 2)
	assert.Len(t, menus.List[0].Children, 2)
	assert.Equal(t, "SettingOutlined", menus.List[0].Icon)

	out = do(t, app, fiber.MethodGet, "/api/menu/keys", tk, "")
	require.Equal(t, http.Success.Code, out.Code)
	var keys struct {
		Keys []string `json:"keys"`
	}
	require.NoError(t, sonic.Unmarshal(out.Detail, &keys))
	assert.Len(t, keys.Keys, 4)
}

func TestRouter_MixMenus(t *testing.T) {
	app := newTestApp(t)
	tk := token(t, "*")

	out := do(t, app, fiber.MethodGet, "/api/menu/menus/mix?location=footer", tk, "")
	assert.Equal(t, http.MenuLocationInvalid.Code, out.Code)

	out = do(t, app, fiber.MethodGet, "/api/menu/menus/mix?location=header", tk, "")
	require.Equal(t, http.Success.Code, out.Code)
	var header struct {
		List []model.MenuNode `json:"list"`
	}
	require.NoError(t, sonic.Unmarshal(out.Detail, &header))
	require.Len(t, header.List, 2)
	for _, m := range header.List {
		assert.Empty(t, m.Children)
	}
}

func TestRouter_InvalidateRouters(t *testing.T) {
	app := newTestApp(t)
	tk := token(t, "sys:user:list")

	first := do(t, app, fiber.MethodGet, "/api/menu/routers", tk, "")
	out := do(t, app, fiber.MethodDelete, "/api/menu/routers/cache", tk, "")
	assert.Equal(t, http.Success.Code, out.Code)
	second := do(t, app, fiber.MethodGet, "/api/menu/routers", tk, "")

	var a, b struct {
		PassID string `json:"passId"`
	}
	require.NoError(t, sonic.Unmarshal(first.Detail, &a))
	require.NoError(t, sonic.Unmarshal(second.Detail, &b))
	assert.NotEqual(t, a.PassID, b.PassID)
}

func TestRouter_Compile(t *testing.T) {
	app := newTestApp(t)
	tk := token(t)

	body := `{"list":[{"id":1,"path":"/tenant","component":"Layout","meta":{"title":"租户管理"},"children":[{"id":2,"path":"list","component":"tenant/list/index","meta":{"permissions":"tenant:list"}}]}]}`
	out := do(t, app, fiber.MethodPost, "/api/menu/compile", tk, body)
	require.Equal(t, http.Success.Code, out.Code)

	var result struct {
		Routes []model.RouteNode `json:"routes"`
		Menus  []model.MenuNode  `json:"menus"`
	}
	require.NoError(t, sonic.Unmarshal(out.Detail, &result))
	require.Len(t, result.Routes, 1)
	assert.Equal(t, "/tenant/list", result.Routes[0].Redirect)
	assert.Equal(t, "/tenant/index", result.Routes[0].Children[0].Component)
	require.Len(t, result.Menus, 1)
	assert.Equal(t, "/tenant/list", result.Menus[0].Path)

	out = do(t, app, fiber.MethodPost, "/api/menu/compile", tk, `{"permissions":[]}`)
	assert.Equal(t, http.MenuRecordsEmpty.Code, out.Code)

	out = do(t, app, fiber.MethodPost, "/api/menu/compile", tk, `{"list":`)
	assert.Equal(t, http.RequestParameterParsingFailed.Code, out.Code)
}
