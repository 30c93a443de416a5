package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/wrapper"
)

// Basic validate base64 "username:password" key
func (m *Middleware) Basic(ctx context.Context, key string) error {
	data, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return ErrInvalidAuthorization
	}

	username, password, ok := strings.Cut(string(data), ":")
	if !ok {
		return ErrInvalidAuthorization
	}
	return m.basicAuthValidator.ValidateBasic(ctx, username, password)
}

// HTTPBasicAuth http basic auth middleware
func (m *Middleware) HTTPBasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		key, err := ExtractAuthType(BASIC, req.Header.Get(candihelper.HeaderAuthorization))
		if err == nil {
			err = m.Basic(req.Context(), key)
		}
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm=""`)
			wrapper.NewHTTPResponse(http.StatusUnauthorized, candishared.ErrUnauthorized).JSON(w)
			return
		}

		next.ServeHTTP(w, req)
	})
}
