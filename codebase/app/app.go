package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	restserver "github.com/golangid/orderpush/codebase/app/rest_server"
	"github.com/golangid/orderpush/codebase/factory"
	"github.com/golangid/orderpush/logger"
)

// App service
type App struct {
	service factory.ServiceFactory
	servers []factory.AppServerFactory
}

// New service app
func New(service factory.ServiceFactory) *App {
	log.Printf("Starting \x1b[32;1m%s\x1b[0m service\n\n", service.Name())

	return &App{
		service: service,
		servers: []factory.AppServerFactory{restserver.NewServer(service)},
	}
}

// Run start app, block until interrupted or a server fail
func (a *App) Run() {
	if len(a.servers) == 0 {
		panic("No server/worker running")
	}

	errServe := make(chan error, len(a.servers))
	for _, server := range a.servers {
		go func(srv factory.AppServerFactory) {
			defer func() {
				if r := recover(); r != nil {
					errServe <- fmt.Errorf("%s: %v", srv.Name(), r)
				}
			}()
			srv.Serve()
		}(server)
	}

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case e := <-errServe:
		a.closeResources(context.Background())
		panic(e)
	case <-quitSignal:
		a.shutdown(quitSignal)
	}
}

// graceful shutdown all server, force when signal received again or timeout exceeded
func (a *App) shutdown(forceShutdown chan os.Signal) {
	fmt.Println("\x1b[34;1mGracefully shutdown... (press Ctrl+C again to force)\x1b[0m")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, server := range a.servers {
			server.Shutdown(ctx)
		}
		a.closeResources(ctx)
	}()

	select {
	case <-done:
		log.Println("\x1b[32;1mSuccess shutdown all server & worker\x1b[0m")
	case <-forceShutdown:
		log.Println("\x1b[31;1mForce shutdown server & worker\x1b[0m")
		cancel()
	case <-ctx.Done():
		log.Println("\x1b[31;1mContext timeout\x1b[0m")
	}
	logger.Sync()
}

func (a *App) closeResources(ctx context.Context) {
	for _, closer := range a.service.GetClosers() {
		logger.LogIfError(closer.Disconnect(ctx))
	}
}
