package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golangid/orderpush/candihelper"
)

const (
	// BEARER constanta
	BEARER = "BEARER"
	// BASIC constanta
	BASIC = "BASIC"
)

// ErrInvalidAuthorization authorization header is missing or malformed
var ErrInvalidAuthorization = errors.New("invalid authorization")

// ExtractAuthType return credential value of authorization header with given prefix
func ExtractAuthType(prefix, authorization string) (string, error) {
	authValues := strings.SplitN(strings.TrimSpace(authorization), " ", 2)
	if len(authValues) == 2 && strings.ToUpper(authValues[0]) == prefix {
		if value := strings.TrimSpace(authValues[1]); value != "" {
			return value, nil
		}
	}
	return "", ErrInvalidAuthorization
}

// BearerToken from request authorization header, empty when missing
func BearerToken(req *http.Request) string {
	token, _ := ExtractAuthType(BEARER, req.Header.Get(candihelper.HeaderAuthorization))
	return token
}
