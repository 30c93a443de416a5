package database

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/logger"
)

// InitRedis connection pool, panic if cannot ping
func InitRedis() *redis.Pool {
	deferFunc := logger.LogWithDefer("Load Redis connection...")
	defer deferFunc()

	cfg := env.BaseEnv().Redis
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 4 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
				redis.DialPassword(cfg.Auth), redis.DialUseTLS(cfg.TLS),
				redis.DialConnectTimeout(5*time.Second))
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	ping := pool.Get()
	defer ping.Close()
	if _, err := ping.Do("PING"); err != nil {
		panic(err)
	}

	return pool
}
