package factory

import (
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/middleware"
)

// ModuleFactory factory
type ModuleFactory interface {
	RESTHandler() interfaces.RESTHandler
	Name() string
}

// ServiceFactory factory
type ServiceFactory interface {
	GetMiddleware() *middleware.Middleware
	GetModules() []ModuleFactory
	// GetClosers resource closed after all server stopped
	GetClosers() []interfaces.Closer
	Name() string
}
