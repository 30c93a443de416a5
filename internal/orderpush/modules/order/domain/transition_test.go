package domain

import (
	"errors"
	"testing"

	"github.com/golangid/orderpush/candishared"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		from, to  Status
		wantError bool
	}{
		{name: "Testcase #1: Positive, pending to ready", from: StatusPending, to: StatusReady},
		{name: "Testcase #2: Positive, ready to done", from: StatusReady, to: StatusDone},
		{name: "Testcase #3: Negative, skip ready", from: StatusPending, to: StatusDone, wantError: true},
		{name: "Testcase #4: Negative, done is terminal", from: StatusDone, to: StatusReady, wantError: true},
		{name: "Testcase #5: Negative, backward", from: StatusReady, to: StatusPending, wantError: true},
		{name: "Testcase #6: Negative, same status", from: StatusReady, to: StatusReady, wantError: true},
		{name: "Testcase #7: Negative, done again", from: StatusDone, to: StatusDone, wantError: true},
		{name: "Testcase #8: Negative, unknown status", from: StatusPending, to: Status("cooking"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{OrderNo: "017", Status: tt.from}
			got, err := Transition(order, tt.to)
			assert.Equal(t, tt.from, order.Status, "order must not be mutated")
			if tt.wantError {
				assert.ErrorIs(t, err, candishared.ErrInvalidTransition)
				var tErr *candishared.TransitionError
				assert.True(t, errors.As(err, &tErr))
				assert.Equal(t, tt.from.String(), tErr.From)
				assert.Equal(t, tt.from, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus(" Ready ")
	assert.True(t, ok)
	assert.Equal(t, StatusReady, st)

	_, ok = ParseStatus("cooking")
	assert.False(t, ok)
}

func TestOrder_NotificationPayload(t *testing.T) {
	o := &Order{OrderNo: "017", ShopID: "shop-1", Status: StatusReady, Name: "Budi"}
	assert.Equal(t, map[string]interface{}{"status": "ready", "shopId": "shop-1", "name": "Budi"}, o.NotificationPayload())

	o.Name = ""
	assert.NotContains(t, o.NotificationPayload(), "name")
}
