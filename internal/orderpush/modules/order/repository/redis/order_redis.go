package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/tracer"
	"github.com/gomodule/redigo/redis"
)

const (
	keyPrefix = "orderpush"
	// orders are scoped by day, keep a bit longer than a day for late lookup
	orderTTL = 48 * time.Hour
)

var (
	// KEYS[1] order key, ARGV[1] status, ARGV[2] updatedAt, ARGV[3] data, ARGV[4] ttl seconds
	createScript = redis.NewScript(1, `
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[1], 'updatedAt', ARGV[2], 'data', ARGV[3])
redis.call('EXPIRE', KEYS[1], ARGV[4])
return 1`)

	// KEYS[1] order key, ARGV[1] from, ARGV[2] to, ARGV[3] updatedAt
	updateStatusScript = redis.NewScript(1, `
local current = redis.call('HGET', KEYS[1], 'status')
if not current then
	return {0, ''}
end
if current ~= ARGV[1] then
	return {-1, current}
end
redis.call('HSET', KEYS[1], 'status', ARGV[2], 'updatedAt', ARGV[3])
return {1, ARGV[2]}`)
)

// OrderRepoRedis order store on redis hash, status changed with compare and set script
type OrderRepoRedis struct {
	pool *redis.Pool
}

// NewOrderRepoRedis constructor
func NewOrderRepoRedis(pool *redis.Pool) *OrderRepoRedis {
	return &OrderRepoRedis{
		pool: pool,
	}
}

func orderKey(key domain.Key) string {
	return fmt.Sprintf("%s:order:%s:%s:%s", keyPrefix, key.ShopID, key.Day, key.OrderNo)
}

func sequenceKey(shopID, day string) string {
	return fmt.Sprintf("%s:seq:%s:%s", keyPrefix, shopID, day)
}

// Create method
func (r *OrderRepoRedis) Create(ctx context.Context, order *domain.Order) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "OrderRepoRedis:Create")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	key := orderKey(order.Key())
	trace.SetTag("key", key)
	created, err := redis.Int(createScript.Do(conn, key,
		order.Status.String(), order.UpdatedAt.Format(time.RFC3339Nano), data, int(orderTTL.Seconds())))
	if err != nil {
		logger.LogE(err.Error())
		return err
	}
	if created == 0 {
		return candishared.ErrOrderNumberConflict
	}
	return nil
}

// Find method
func (r *OrderRepoRedis) Find(ctx context.Context, key domain.Key) (order *domain.Order, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "OrderRepoRedis:Find")
	defer func() {
		if !errors.Is(err, candishared.ErrOrderNotFound) {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	fields, err := redis.StringMap(conn.Do("HGETALL", orderKey(key)))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, candishared.ErrOrderNotFound
	}
	return decodeOrder(fields)
}

// UpdateStatus method
func (r *OrderRepoRedis) UpdateStatus(ctx context.Context, key domain.Key, from, to domain.Status, updatedAt time.Time) (order *domain.Order, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "OrderRepoRedis:UpdateStatus")
	defer func() { trace.SetError(err); trace.Finish() }()

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	reply, err := redis.Values(updateStatusScript.Do(conn, orderKey(key), from.String(), to.String(), updatedAt.Format(time.RFC3339Nano)))
	if err != nil {
		return nil, err
	}
	var (
		result  int
		current string
	)
	if _, err := redis.Scan(reply, &result, &current); err != nil {
		return nil, err
	}

	switch result {
	case 0:
		return nil, candishared.ErrOrderNotFound
	case -1:
		order, err = r.Find(ctx, key)
		if err != nil {
			return nil, err
		}
		return order, &candishared.TransitionError{From: current, To: to.String()}
	}
	return r.Find(ctx, key)
}

// NextSequence method
func (r *OrderRepoRedis) NextSequence(ctx context.Context, shopID, day string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	key := sequenceKey(shopID, day)
	conn.Send("MULTI")
	conn.Send("INCR", key)
	conn.Send("EXPIRE", key, int(orderTTL.Seconds()))
	reply, err := redis.Values(conn.Do("EXEC"))
	if err != nil {
		return 0, err
	}
	return redis.Int64(reply[0], nil)
}

func decodeOrder(fields map[string]string) (*domain.Order, error) {
	var order domain.Order
	if err := json.Unmarshal([]byte(fields["data"]), &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	// status and updatedAt are the only mutable fields, hash value is the source of truth
	order.Status = domain.Status(fields["status"])
	if updatedAt, err := time.Parse(time.RFC3339Nano, fields["updatedAt"]); err == nil {
		order.UpdatedAt = updatedAt
	}
	return &order, nil
}
