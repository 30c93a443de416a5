package wrapper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/logger"
)

// HTTPMiddlewareConfig config for log middleware
type HTTPMiddlewareConfig struct {
	DisableFunc func(r *http.Request) bool
}

// HTTPMiddlewareCORS middleware wrapper for cors, "*" origin allow all
func HTTPMiddlewareCORS(
	allowMethods, allowHeaders, allowOrigins []string,
	exposeHeaders []string,
	allowCredential bool,
) func(http.Handler) http.Handler {

	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	if len(allowMethods) == 0 {
		allowMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}
	}
	exposeHeader := strings.Join(exposeHeaders, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			origin := req.Header.Get(candihelper.HeaderOrigin)
			allowOrigin := ""

			for _, o := range allowOrigins {
				if o == "*" && allowCredential {
					allowOrigin = origin
					break
				}
				if o == "*" || o == origin {
					allowOrigin = o
					break
				}
			}

			// Simple request
			if req.Method != http.MethodOptions {
				res.Header().Add("Vary", "Origin")
				if allowOrigin != "" {
					res.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				}
				if exposeHeader != "" {
					res.Header().Set("Access-Control-Expose-Headers", exposeHeader)
				}
				next.ServeHTTP(res, req)
				return
			}

			// Preflight request
			res.Header().Add("Vary", "Origin")
			res.Header().Add("Vary", "Access-Control-Request-Method")
			res.Header().Add("Vary", "Access-Control-Request-Headers")
			if allowOrigin != "" {
				res.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			}
			res.Header().Set("Access-Control-Allow-Methods", strings.Join(allowMethods, ","))
			if len(allowHeaders) > 0 {
				res.Header().Set("Access-Control-Allow-Headers", strings.Join(allowHeaders, ","))
			} else if h := req.Header.Get("Access-Control-Request-Headers"); h != "" {
				res.Header().Set("Access-Control-Allow-Headers", h)
			}
			res.WriteHeader(http.StatusNoContent)
		})
	}
}

// HTTPMiddlewareLog log every request with zap logger
func HTTPMiddlewareLog(cfg HTTPMiddlewareConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if cfg.DisableFunc != nil && cfg.DisableFunc(req) {
				next.ServeHTTP(w, req)
				return
			}

			start := time.Now()
			rw := NewWrapHTTPResponseWriter(w)
			next.ServeHTTP(rw, req)

			logger.LogIf("%s %s %d %dB %s remote=%s",
				req.Method, req.URL.RequestURI(), rw.StatusCode(), rw.Size(), time.Since(start), req.RemoteAddr)
		})
	}
}

// HTTPHandlerDefaultRoot default root http handler
func HTTPHandlerDefaultRoot(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	payload := struct {
		BuildNumber string `json:"build_number,omitempty"`
		Message     string `json:"message,omitempty"`
		Hostname    string `json:"hostname,omitempty"`
		Timestamp   string `json:"timestamp,omitempty"`
		StartAt     string `json:"start_at,omitempty"`
		Uptime      string `json:"uptime,omitempty"`
	}{
		Message:     fmt.Sprintf("Service %s up and running", env.BaseEnv().ServiceName),
		Timestamp:   now.Format(time.RFC3339Nano),
		BuildNumber: env.BaseEnv().BuildNumber,
	}

	if startAt, err := time.Parse(time.RFC3339, env.BaseEnv().StartAt); err == nil {
		payload.StartAt = env.BaseEnv().StartAt
		payload.Uptime = now.Sub(startAt).String()
	}
	if hostname, err := os.Hostname(); err == nil {
		payload.Hostname = hostname
	}
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	json.NewEncoder(w).Encode(payload)
}

// HTTPHandlerMemstats calculate runtime statistic
func HTTPHandlerMemstats(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	data := struct {
		NumGoroutine int         `json:"num_goroutine"`
		Memstats     interface{} `json:"memstats"`
	}{
		runtime.NumGoroutine(), m,
	}
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	json.NewEncoder(w).Encode(data)
}
