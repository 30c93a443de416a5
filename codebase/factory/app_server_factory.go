package factory

import "context"

// AppServerFactory server run by app, Serve block until Shutdown
type AppServerFactory interface {
	Serve()
	Shutdown(ctx context.Context)
	Name() string
}
