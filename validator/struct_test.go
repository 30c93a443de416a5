package validator

import (
	"errors"
	"testing"

	"github.com/golangid/orderpush/candishared"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Event   string `json:"event" validate:"notblank"`
	OrderNo string `json:"orderNo" validate:"omitempty,max=5"`
}

func TestStructValidator(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name       string
		data       sample
		wantFields map[string]string
	}{
		{name: "Testcase #1: Positive", data: sample{Event: "order:status", OrderNo: "017"}},
		{name: "Testcase #2: Negative, blank event", data: sample{Event: "  "}, wantFields: map[string]string{"event": "notblank"}},
		{name: "Testcase #3: Negative, too long", data: sample{Event: "x", OrderNo: "123456"}, wantFields: map[string]string{"orderNo": "max=5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.data)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, candishared.ErrBadRequest))
			var vErr *candishared.ValidationError
			assert.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}
