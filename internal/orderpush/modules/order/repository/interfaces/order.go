package interfaces

import (
	"context"
	"time"

	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
)

// OrderRepository order store
type OrderRepository interface {
	// Create insert order if number not used yet for the shop/day, else candishared.ErrOrderNumberConflict
	Create(ctx context.Context, order *domain.Order) error
	// Find order by key, candishared.ErrOrderNotFound when missing
	Find(ctx context.Context, key domain.Key) (*domain.Order, error)
	// UpdateStatus set status only when current status equal from, return stored order.
	// On mismatch the stored order is returned together with *candishared.TransitionError
	UpdateStatus(ctx context.Context, key domain.Key, from, to domain.Status, updatedAt time.Time) (*domain.Order, error)
	// NextSequence increment and return counter of shop/day
	NextSequence(ctx context.Context, shopID, day string) (int64, error)
}
