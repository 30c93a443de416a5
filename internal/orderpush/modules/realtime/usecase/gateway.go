package usecase

import (
	"context"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/tracer"
	"github.com/golangid/orderpush/validator"
)

type gatewayImpl struct {
	secret    string
	broker    Broker
	validator *validator.StructValidator
	now       func() time.Time
}

// GatewayOption option func
type GatewayOption func(*gatewayImpl)

// SetGatewayClock override clock used for event issued time
func SetGatewayClock(now func() time.Time) GatewayOption {
	return func(g *gatewayImpl) {
		g.now = now
	}
}

// NewGateway constructor, empty secret reject every publish
func NewGateway(secret string, broker Broker, opts ...GatewayOption) Gateway {
	g := &gatewayImpl{
		secret:    secret,
		broker:    broker,
		validator: validator.NewStructValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Publish check secret, then fanout to order room and broadcast to staff group
func (g *gatewayImpl) Publish(ctx context.Context, secret, eventName, orderNo string, payload map[string]interface{}) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "RealtimeGateway:Publish")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	if !candihelper.SecureCompare(secret, g.secret) {
		return candishared.ErrUnauthorized
	}

	req := domain.PublishRequest{Event: eventName, OrderNo: orderNo, Payload: payload}
	if err = g.validator.ValidateStruct(&req); err != nil {
		return err
	}
	trace.SetTag("event", eventName)
	trace.SetTag("orderNo", orderNo)

	data := candihelper.CopyMap(payload)
	data["orderNo"] = orderNo
	issuedAt := g.now()

	roomDelivered, err := g.broker.Fanout(ctx, domain.Event{
		Name: eventName, OrderNo: orderNo, Payload: data, IssuedAt: issuedAt,
	})
	if err != nil {
		return err
	}
	staffDelivered, err := g.broker.BroadcastToStaff(ctx, domain.Event{
		Name: domain.StaffEventPrefix + eventName, OrderNo: orderNo, Payload: candihelper.CopyMap(data), IssuedAt: issuedAt,
	})
	if err != nil {
		return err
	}

	trace.Log("delivered", map[string]int{"room": roomDelivered, "staff": staffDelivered})
	logger.LogIf("realtime: publish %s order %s, delivered room=%d staff=%d", eventName, orderNo, roomDelivered, staffDelivered)
	return nil
}
