package memory

import (
	"context"
	"sync"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
)

type sequenceKey struct {
	shopID, day string
}

// OrderRepoMemory in process store, orders are copied in and out so callers never share items or reference
type OrderRepoMemory struct {
	mu        sync.Mutex
	orders    map[domain.Key]domain.Order
	sequences map[sequenceKey]int64
}

// NewOrderRepoMemory constructor
func NewOrderRepoMemory() *OrderRepoMemory {
	return &OrderRepoMemory{
		orders:    make(map[domain.Key]domain.Order),
		sequences: make(map[sequenceKey]int64),
	}
}

// Create method
func (r *OrderRepoMemory) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := order.Key()
	if _, ok := r.orders[key]; ok {
		return candishared.ErrOrderNumberConflict
	}
	r.orders[key] = cloneOrder(*order)
	return nil
}

// Find method
func (r *OrderRepoMemory) Find(ctx context.Context, key domain.Key) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[key]
	if !ok {
		return nil, candishared.ErrOrderNotFound
	}
	order = cloneOrder(order)
	return &order, nil
}

// UpdateStatus method
func (r *OrderRepoMemory) UpdateStatus(ctx context.Context, key domain.Key, from, to domain.Status, updatedAt time.Time) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[key]
	if !ok {
		return nil, candishared.ErrOrderNotFound
	}
	order = cloneOrder(order)
	if order.Status != from {
		return &order, &candishared.TransitionError{From: order.Status.String(), To: to.String()}
	}
	order.Status = to
	order.UpdatedAt = updatedAt
	r.orders[key] = cloneOrder(order)
	return &order, nil
}

// NextSequence method
func (r *OrderRepoMemory) NextSequence(ctx context.Context, shopID, day string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sequenceKey{shopID: shopID, day: day}
	r.sequences[key]++
	return r.sequences[key], nil
}

func cloneOrder(order domain.Order) domain.Order {
	if order.Items != nil {
		order.Items = append([]domain.Item(nil), order.Items...)
	}
	if order.Reference != nil {
		order.Reference = candihelper.CopyMap(order.Reference)
	}
	return order
}
