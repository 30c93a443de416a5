package interfaces

import "context"

// Closer resource released after every server stopped (hub, redis pool, tracer)
type Closer interface {
	Disconnect(ctx context.Context) error
}
