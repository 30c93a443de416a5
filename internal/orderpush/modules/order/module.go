package order

import (
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/delivery/resthandler"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/usecase"
	"github.com/golangid/orderpush/middleware"
	"github.com/golangid/orderpush/publisher"
)

const (
	// Name module name
	Name = "Order"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
	usecase     usecase.OrderUsecase
}

// NewModule module constructor
func NewModule(mw *middleware.Middleware, repo *repository.Repository, numbering usecase.NumberingConfig,
	pub publisher.Publisher, opts ...usecase.OptionFunc) *Module {

	uc := usecase.NewOrderUsecase(repo.Order, usecase.NewNumbering(numbering, repo.Order), pub, opts...)

	var mod Module
	mod.usecase = uc
	mod.restHandler = resthandler.NewRestHandler(mw, uc)
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.RESTHandler {
	return m.restHandler
}

// Usecase order state machine
func (m *Module) Usecase() usecase.OrderUsecase {
	return m.usecase
}

// Name get module name
func (m *Module) Name() string {
	return Name
}
