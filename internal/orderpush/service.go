package orderpush

import (
	"context"
	"io"

	"github.com/golangid/orderpush/codebase/factory"
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/config/database"
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/internal/orderpush/modules/order"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/usecase"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/middleware"
	"github.com/golangid/orderpush/publisher"
	"github.com/golangid/orderpush/tracer"
	"github.com/gomodule/redigo/redis"
)

// Service model
type Service struct {
	mw      *middleware.Middleware
	modules []factory.ModuleFactory
	closers []interfaces.Closer
	name    string
}

// NewService in this service, read global env
func NewService(serviceName string) factory.ServiceFactory {
	cfg := env.BaseEnv()
	logger.SetDebugMode(cfg.DebugMode)

	s := &Service{
		mw:   middleware.NewMiddleware(cfg.BasicAuthUsername, cfg.BasicAuthPassword),
		name: serviceName,
	}

	if cfg.JaegerTracingHost != "" {
		closer, err := tracer.InitJaeger(serviceName, tracer.Option{
			AgentHost:      cfg.JaegerTracingHost,
			Level:          cfg.Environment,
			BuildNumberTag: cfg.BuildNumber,
		})
		if err != nil {
			panic(err)
		}
		s.closers = append(s.closers, ioCloser{closer})
	}

	rt := realtime.NewModule(s.mw, realtime.Option{
		Secret:         cfg.EmitSecret,
		SendBuffer:     cfg.WSSendBuffer,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxMessageSize: cfg.WSMaxMessageSize,
	})
	s.modules = append(s.modules, rt)

	if cfg.UseOrderService {
		var redisPool *redis.Pool
		if cfg.OrderStore == env.OrderStoreRedis {
			redisPool = database.InitRedis()
			s.closers = append(s.closers, ioCloser{redisPool})
		}

		var pub publisher.Publisher = publisher.NewGatewayPublisher(rt.Gateway(), cfg.EmitSecret)
		if cfg.EmitURL != "" {
			pub = publisher.NewHTTPPublisher(cfg.EmitURL, cfg.EmitSecret)
		}

		s.modules = append(s.modules, order.NewModule(s.mw,
			repository.NewRepository(cfg.OrderStore, redisPool),
			usecase.NumberingConfig{
				Default: cfg.OrderNumbering,
				PerShop: cfg.ShopNumbering,
				Digits:  cfg.OrderNumberDigits,
			},
			pub,
			usecase.SetLocation(cfg.OrderTimezone),
		))
	}

	// hub first, then store and tracer
	s.closers = append([]interfaces.Closer{rt.Hub()}, s.closers...)
	return s
}

// GetMiddleware method
func (s *Service) GetMiddleware() *middleware.Middleware {
	return s.mw
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// GetClosers method
func (s *Service) GetClosers() []interfaces.Closer {
	return s.closers
}

// Name method
func (s *Service) Name() string {
	return s.name
}

type ioCloser struct {
	io.Closer
}

func (c ioCloser) Disconnect(ctx context.Context) error {
	return c.Close()
}
