package usecase

import (
	"context"

	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
)

// OrderUsecase order status state machine
type OrderUsecase interface {
	// CreateOrder allocate pending order, empty candidate number means generate
	CreateOrder(ctx context.Context, shopID string, req domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, key domain.Key) (*domain.Order, error)
	// Transition change order status then notify, rejected transition never publish
	Transition(ctx context.Context, key domain.Key, requested domain.Status) (*domain.Order, error)
	// Today order day for now in configured timezone
	Today() string
}
