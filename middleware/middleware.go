package middleware

import (
	"context"
	"errors"

	"github.com/golangid/orderpush/candihelper"
)

// BasicAuthValidator abstract interface
type BasicAuthValidator interface {
	ValidateBasic(ctx context.Context, username, password string) error
}

// Middleware impl
type Middleware struct {
	basicAuthValidator BasicAuthValidator
}

// OptionFunc type
type OptionFunc func(*Middleware)

// SetBasicAuthValidator option func
func SetBasicAuthValidator(basicAuth BasicAuthValidator) OptionFunc {
	return func(mw *Middleware) {
		mw.basicAuthValidator = basicAuth
	}
}

// NewMiddleware create new middleware instance, default basic auth compare with given credential
func NewMiddleware(basicUsername, basicPassword string, opts ...OptionFunc) *Middleware {
	mw := &Middleware{
		basicAuthValidator: &staticCredential{username: basicUsername, password: basicPassword},
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}

type staticCredential struct {
	username, password string
}

func (s *staticCredential) ValidateBasic(ctx context.Context, username, password string) error {
	if s.username == "" || s.password == "" {
		return errors.New("basic auth is not configured")
	}
	if !candihelper.SecureCompare(username, s.username) || !candihelper.SecureCompare(password, s.password) {
		return errors.New("invalid credentials")
	}
	return nil
}
