package restserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/golangid/orderpush/codebase/factory"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/wrapper"
)

type restServer struct {
	opt        option
	httpEngine *http.Server
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		httpEngine: new(http.Server),
		opt:        getDefaultOption(),
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.httpEngine.Addr = fmt.Sprintf(":%d", server.opt.httpPort)
	server.httpEngine.Handler = newHandler(service, server.opt)
	server.httpEngine.ReadHeaderTimeout = server.opt.readTimeout

	fmt.Printf("\x1b[34;1m⇨ HTTP server run at port [::]%s\x1b[0m\n\n", server.httpEngine.Addr)
	return server
}

// NewHandler build root http handler of service, used by server and tests
func NewHandler(service factory.ServiceFactory, opts ...OptionFunc) http.Handler {
	opt := getDefaultOption()
	for _, o := range opts {
		o(&opt)
	}
	return newHandler(service, opt)
}

func newHandler(service factory.ServiceFactory, opt option) http.Handler {
	mux := chi.NewRouter()
	mux.Use(opt.rootMiddlewares...)
	mux.Get("/", opt.rootHandler)
	mux.Route("/memstats", func(r chi.Router) {
		r.Use(service.GetMiddleware().HTTPBasicAuth)
		r.Get("/", http.HandlerFunc(wrapper.HTTPHandlerMemstats))
	})
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		wrapper.NewHTTPResponse(http.StatusNotFound, fmt.Sprintf(`Resource "%s %s" not found`, r.Method, r.URL.Path)).JSON(w)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		wrapper.NewHTTPResponse(http.StatusMethodNotAllowed, fmt.Sprintf(`Method "%s" not allowed for "%s"`, r.Method, r.URL.Path)).JSON(w)
	})

	route := &routeWrapper{router: mux}
	for _, m := range service.GetModules() {
		if h := m.RESTHandler(); h != nil {
			h.Mount(route)
		}
	}

	chi.Walk(mux, func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		logger.LogGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-30s", method, route))
		return nil
	})
	return mux
}

func (s *restServer) Serve() {
	if err := s.httpEngine.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Panicf("REST Server: Unexpected Error: %v", err)
	}
}

func (s *restServer) Shutdown(ctx context.Context) {
	defer log.Println("\x1b[33;1mStopping HTTP server:\x1b[0m \x1b[32;1mSUCCESS\x1b[0m")

	s.httpEngine.Shutdown(ctx)
}

func (s *restServer) Name() string {
	return "REST"
}
