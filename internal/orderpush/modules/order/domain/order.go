package domain

import (
	"strings"
	"time"
)

// Status order lifecycle state
type Status string

const (
	// StatusPending initial status on creation
	StatusPending Status = "pending"
	// StatusReady order can be picked up
	StatusReady Status = "ready"
	// StatusDone terminal
	StatusDone Status = "done"
)

// ParseStatus from request value, second return false for unknown value
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusReady, StatusDone:
		return st, true
	}
	return "", false
}

func (s Status) String() string {
	return string(s)
}

// Order order record, number unique per shop per day
type Order struct {
	OrderNo   string                 `json:"orderNo"`
	ShopID    string                 `json:"shopId"`
	Day       string                 `json:"day"`
	Status    Status                 `json:"status"`
	Name      string                 `json:"name,omitempty"`
	Items     []Item                 `json:"items,omitempty"`
	Reference map[string]interface{} `json:"reference,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// Item pass-through order line
type Item struct {
	Name     string `json:"name" validate:"notblank,max=128"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Note     string `json:"note,omitempty" validate:"max=256"`
}

// Key identify order in store
type Key struct {
	ShopID, Day, OrderNo string
}

// Key of order
func (o *Order) Key() Key {
	return Key{ShopID: o.ShopID, Day: o.Day, OrderNo: o.OrderNo}
}

// NotificationPayload event payload for status change, orderNo added by gateway
func (o *Order) NotificationPayload() map[string]interface{} {
	payload := map[string]interface{}{
		"status": o.Status.String(),
		"shopId": o.ShopID,
	}
	if o.Name != "" {
		payload["name"] = o.Name
	}
	return payload
}

// CreateOrderRequest create order body, empty orderNo means generate
type CreateOrderRequest struct {
	OrderNo   string                 `json:"orderNo" validate:"max=32"`
	Name      string                 `json:"name" validate:"max=128"`
	Items     []Item                 `json:"items" validate:"dive"`
	Reference map[string]interface{} `json:"reference"`
}
