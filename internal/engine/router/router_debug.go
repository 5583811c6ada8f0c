package router

import (
	"net/http/pprof"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// debugRouter 注册pprof路由
// 访问地址: /debug/pprof
func (rt *Router) debugRouter(r fiber.Router) {
	r.Get("/", adaptor.HTTPHandlerFunc(pprof.Index))
	r.Get("/cmdline", adaptor.HTTPHandlerFunc(pprof.Cmdline))
	r.Get("/profile", adaptor.HTTPHandlerFunc(pprof.Profile))
	r.Get("/symbol", adaptor.HTTPHandlerFunc(pprof.Symbol))
	r.Post("/symbol", adaptor.HTTPHandlerFunc(pprof.Symbol))
	r.Get("/trace", adaptor.HTTPHandlerFunc(pprof.Trace))
	for _, name := range profiles {
		r.Get("/"+name, adaptor.HTTPHandler(pprof.Handler(name)))
	}
}
