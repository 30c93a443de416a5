package domain

import "time"

const (
	// EventOrderStatus status change notification
	EventOrderStatus = "order:status"
	// EventOrderCreated new order notification
	EventOrderCreated = "order:created"

	// StaffEventPrefix prefix for staff broadcast event name
	StaffEventPrefix = "staff:"
)

// Event publish unit routed by broker
type Event struct {
	Name     string
	OrderNo  string
	Payload  map[string]interface{}
	IssuedAt time.Time
}

// Message outbound frame written to client
func (e Event) Message() Message {
	return Message{
		Event:    e.Name,
		Payload:  e.Payload,
		IssuedAt: e.IssuedAt,
	}
}

// Message server to client frame
type Message struct {
	Event    string                 `json:"event"`
	Payload  map[string]interface{} `json:"payload"`
	IssuedAt time.Time              `json:"issuedAt"`
}

// PublishRequest publish gateway request body
type PublishRequest struct {
	Event   string                 `json:"event" validate:"notblank"`
	OrderNo string                 `json:"orderNo" validate:"notblank"`
	Payload map[string]interface{} `json:"payload"`
}
