package repository

import (
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository/memory"
	redisrepo "github.com/golangid/orderpush/internal/orderpush/modules/order/repository/redis"
	"github.com/gomodule/redigo/redis"
)

// Repository repo
type Repository struct {
	Order interfaces.OrderRepository
}

// NewRepository constructor, redis pool only used when store is redis
func NewRepository(store string, redisPool *redis.Pool) *Repository {
	switch store {
	case env.OrderStoreRedis:
		return &Repository{Order: redisrepo.NewOrderRepoRedis(redisPool)}
	default:
		return &Repository{Order: memory.NewOrderRepoMemory()}
	}
}
