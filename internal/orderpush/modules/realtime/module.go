package realtime

import (
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/delivery/resthandler"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/delivery/wshandler"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/usecase"
	"github.com/golangid/orderpush/middleware"
)

const (
	// Name module name
	Name = "Realtime"
)

// Option module option
type Option struct {
	Secret         string
	SendBuffer     int
	AllowedOrigins []string
	MaxMessageSize int64
}

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
	wsHandler   *wshandler.WSHandler

	hub     *usecase.Hub
	gateway usecase.Gateway
}

// NewModule module constructor
func NewModule(mw *middleware.Middleware, opt Option) *Module {
	hub := usecase.NewHub(usecase.SetSendBuffer(opt.SendBuffer))
	gateway := usecase.NewGateway(opt.Secret, hub)

	var mod Module
	mod.hub = hub
	mod.gateway = gateway
	mod.restHandler = resthandler.NewRestHandler(mw, gateway, hub)
	mod.wsHandler = wshandler.NewWSHandler(hub, wshandler.Option{
		AllowedOrigins: opt.AllowedOrigins,
		MaxMessageSize: opt.MaxMessageSize,
	})
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.RESTHandler {
	return m
}

// Mount publish gateway and websocket endpoint
func (m *Module) Mount(root interfaces.RESTRouter) {
	m.restHandler.Mount(root)
	m.wsHandler.Mount(root)
}

// Gateway publish entry point for in process publisher
func (m *Module) Gateway() usecase.Gateway {
	return m.gateway
}

// Hub closed on shutdown
func (m *Module) Hub() *usecase.Hub {
	return m.hub
}

// Name get module name
func (m *Module) Name() string {
	return Name
}
