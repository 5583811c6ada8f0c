package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/go-arcade/navtree/internal/engine/constant"
	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/internal/pkg/menutree"
	"github.com/go-arcade/navtree/pkg/http"
	"github.com/go-arcade/navtree/pkg/http/middleware"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2025/3/2 11:20
 * @file: router_menu.go
 * @description: menu router
 */

func (rt *Router) menuRouter(r fiber.Router, auth fiber.Handler) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.Get("/routers", auth, rt.getRouters)                // GET /menu/routers - 当前会话的路由树
		menuGroup.Delete("/routers/cache", auth, rt.invalidateRouters) // DELETE /menu/routers/cache - 丢弃已生成的路由
		menuGroup.Get("/menus", auth, rt.getMenus)                    // GET /menu/menus - 当前会话的展示菜单
		menuGroup.Get("/menus/mix", auth, rt.getMixMenus)             // GET /menu/menus/mix?location=header|side&name=
		menuGroup.Get("/keys", auth, rt.getMenuKeys)                  // GET /menu/keys - 展开全部菜单的 key
		menuGroup.Post("/compile", auth, rt.compileMenus)             // POST /menu/compile - 编译调用方提交的菜单
	}
}

type compileRequest struct {
	List        []model.MenuRecord `json:"list"`
	Permissions []string           `json:"permissions"`
}

// session 从认证信息构建会话
func session(c *fiber.Ctx) (*model.Session, bool) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil, false
	}
	token := ""
	if auth := c.Get(fiber.HeaderAuthorization); len(auth) > len("Bearer ") {
		token = auth[len("Bearer "):]
	}
	return &model.Session{
		UserId:      claims.UserId,
		TenantId:    claims.TenantId,
		Roles:       claims.Roles,
		Permissions: claims.Permissions,
		Token:       token,
	}, true
}

func (rt *Router) getRouters(c *fiber.Ctx) error {
	s, ok := session(c)
	if !ok {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	bundle, err := rt.Routes.Generate(c.UserContext(), s)
	if err != nil {
		return http.WithRepErrMsg(c, http.MenuSourceUnavailable.Code, err.Error(), c.Path())
	}

	c.Locals(constant.DETAIL, fiber.Map{
		"passId":   bundle.PassID,
		"fallback": bundle.Fallback,
		"list":     bundle.Routes,
	})
	return nil
}

func (rt *Router) invalidateRouters(c *fiber.Ctx) error {
	s, ok := session(c)
	if !ok {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	if err := rt.Routes.Invalidate(c.UserContext(), s); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}

	c.Locals(constant.OPERATION, "invalidate routes")
	return nil
}

func (rt *Router) getMenus(c *fiber.Ctx) error {
	s, ok := session(c)
	if !ok {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	bundle, err := rt.Routes.Generate(c.UserContext(), s)
	if err != nil {
		return http.WithRepErrMsg(c, http.MenuSourceUnavailable.Code, err.Error(), c.Path())
	}

	c.Locals(constant.DETAIL, fiber.Map{
		"passId":   bundle.PassID,
		"fallback": bundle.Fallback,
		"list":     bundle.Menus,
	})
	return nil
}

func (rt *Router) getMixMenus(c *fiber.Ctx) error {
	location := menutree.Location(c.Query("location", string(menutree.LocationHeader)))
	if location != menutree.LocationHeader && location != menutree.LocationSide {
		return http.WithRepErrMsg(c, http.MenuLocationInvalid.Code, http.MenuLocationInvalid.Msg, c.Path())
	}
	s, ok := session(c)
	if !ok {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	bundle, err := rt.Routes.Generate(c.UserContext(), s)
	if err != nil {
		return http.WithRepErrMsg(c, http.MenuSourceUnavailable.Code, err.Error(), c.Path())
	}

	c.Locals(constant.DETAIL, fiber.Map{
		"location": location,
		"list":     rt.Routes.CompileMix(bundle, c.Query("name"), location),
	})
	return nil
}

func (rt *Router) getMenuKeys(c *fiber.Ctx) error {
	s, ok := session(c)
	if !ok {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	bundle, err := rt.Routes.Generate(c.UserContext(), s)
	if err != nil {
		return http.WithRepErrMsg(c, http.MenuSourceUnavailable.Code, err.Error(), c.Path())
	}

	c.Locals(constant.DETAIL, fiber.Map{
		"keys": menutree.ExpandKeys(bundle.Menus),
	})
	return nil
}

func (rt *Router) compileMenus(c *fiber.Ctx) error {
	var req compileRequest
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}
	if req.List == nil {
		return http.WithRepErrMsg(c, http.MenuRecordsEmpty.Code, http.MenuRecordsEmpty.Msg, c.Path())
	}

	c.Locals(constant.DETAIL, rt.Routes.Compile(c.UserContext(), req.List, req.Permissions))
	return nil
}
