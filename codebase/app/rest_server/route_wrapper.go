package restserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golangid/orderpush/codebase/interfaces"
)

// URLParam default parse param from url path
var URLParam = func(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

type routeWrapper struct {
	router chi.Router
}

func (r *routeWrapper) Use(middlewares ...func(http.Handler) http.Handler) {
	r.router.Use(middlewares...)
}

func (r *routeWrapper) Group(pattern string, middlewares ...func(http.Handler) http.Handler) interfaces.RESTRouter {
	route := r.router.Route(pattern, func(chi.Router) {})
	if len(middlewares) > 0 {
		route.Use(middlewares...)
	}
	return &routeWrapper{router: route}
}

func (r *routeWrapper) HandleFunc(pattern string, h http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) {
	r.router.HandleFunc(pattern, withChainingMiddlewares(h, middlewares...))
}

func (r *routeWrapper) GET(pattern string, h http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) {
	r.router.Get(pattern, withChainingMiddlewares(h, middlewares...))
}

func (r *routeWrapper) POST(pattern string, h http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) {
	r.router.Post(pattern, withChainingMiddlewares(h, middlewares...))
}

// withChainingMiddlewares first middleware is the outermost
func withChainingMiddlewares(handlerFunc http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) http.HandlerFunc {
	var handler http.Handler = handlerFunc
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler.ServeHTTP
}

// NewRouter wrap chi router as RESTRouter, used to mount single handler outside server
func NewRouter(router chi.Router) interfaces.RESTRouter {
	return &routeWrapper{router: router}
}
