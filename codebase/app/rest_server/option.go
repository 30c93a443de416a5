package restserver

import (
	"net/http"
	"time"

	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/wrapper"
)

type (
	option struct {
		rootMiddlewares []func(http.Handler) http.Handler
		rootHandler     http.HandlerFunc
		httpPort        uint16
		readTimeout     time.Duration
	}

	// OptionFunc type
	OptionFunc func(*option)
)

var (
	// MiddlewareExcludeURLPath path without request log
	MiddlewareExcludeURLPath = map[string]struct{}{"/": {}, "/favicon.ico": {}}
)

func getDefaultOption() option {
	return option{
		httpPort:    env.BaseEnv().HTTPPort,
		readTimeout: 30 * time.Second,
		rootMiddlewares: []func(http.Handler) http.Handler{
			wrapper.HTTPMiddlewareCORS(
				nil, []string{"Authorization", "Content-Type"},
				env.BaseEnv().AllowedOrigins, nil, false,
			),
			wrapper.HTTPMiddlewareLog(wrapper.HTTPMiddlewareConfig{
				DisableFunc: func(r *http.Request) bool {
					_, ok := MiddlewareExcludeURLPath[r.URL.Path]
					return !env.BaseEnv().DebugMode || ok
				},
			}),
		},
		rootHandler: http.HandlerFunc(wrapper.HTTPHandlerDefaultRoot),
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetRootHTTPHandler option func
func SetRootHTTPHandler(rootHandler http.HandlerFunc) OptionFunc {
	return func(o *option) {
		o.rootHandler = rootHandler
	}
}

// SetRootMiddlewares option func, overide root middleware
func SetRootMiddlewares(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = middlewares
	}
}

// AddRootMiddlewares option func
func AddRootMiddlewares(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(o *option) {
		o.rootMiddlewares = append(o.rootMiddlewares, middlewares...)
	}
}
