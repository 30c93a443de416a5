// Package orderwatch client side of order notification: push over websocket
// with pull reconciliation against the order service.
package orderwatch

import "context"

// Fetcher pull current status of order
type Fetcher interface {
	FetchStatus(ctx context.Context, orderNo string) (string, error)
}
