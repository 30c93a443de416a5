package usecase

import (
	"context"

	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
)

// Registry connection lifecycle and room membership
type Registry interface {
	Register(ctx context.Context, opts ...ConnectionOption) (*Connection, error)
	Join(ctx context.Context, conn *Connection, orderNo string) error
	Leave(ctx context.Context, conn *Connection, orderNo string) error
	// Unregister remove connection from every room and close it, safe to call more than once
	Unregister(ctx context.Context, conn *Connection) error
	Rooms(ctx context.Context, conn *Connection) ([]string, error)
}

// Broker deliver event to room members and staff group
type Broker interface {
	// Fanout deliver to current members of room event.OrderNo, return number of enqueued connection
	Fanout(ctx context.Context, event domain.Event) (int, error)
	// BroadcastToStaff deliver to every connection in staff group
	BroadcastToStaff(ctx context.Context, event domain.Event) (int, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// Gateway authenticated publish entry point
type Gateway interface {
	Publish(ctx context.Context, secret, eventName, orderNo string, payload map[string]interface{}) error
}
