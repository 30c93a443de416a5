package publisher

import "context"

// Publisher notify order event to realtime core
type Publisher interface {
	Publish(ctx context.Context, eventName, orderNo string, payload map[string]interface{}) error
}

// Gateway authenticated publish entry point of realtime core
type Gateway interface {
	Publish(ctx context.Context, secret, eventName, orderNo string, payload map[string]interface{}) error
}

// GatewayPublisher in process publisher, realtime core deployed in the same process
type GatewayPublisher struct {
	gateway Gateway
	secret  string
}

// NewGatewayPublisher constructor
func NewGatewayPublisher(gateway Gateway, secret string) *GatewayPublisher {
	return &GatewayPublisher{gateway: gateway, secret: secret}
}

// Publish method
func (p *GatewayPublisher) Publish(ctx context.Context, eventName, orderNo string, payload map[string]interface{}) error {
	return p.gateway.Publish(ctx, p.secret, eventName, orderNo, payload)
}
