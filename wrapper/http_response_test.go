package wrapper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPResponse(t *testing.T) {
	type Data struct {
		OrderNo string `json:"orderNo"`
	}

	tests := []struct {
		name string
		code int
		args []interface{}
		want string
	}{
		{
			name: "Testcase #1: Success without data",
			code: http.StatusOK,
			want: `{"ok":true}`,
		},
		{
			name: "Testcase #2: Success with data",
			code: http.StatusCreated,
			args: []interface{}{Data{OrderNo: "017"}},
			want: `{"ok":true,"data":{"orderNo":"017"}}`,
		},
		{
			name: "Testcase #3: Unauthorized",
			code: http.StatusUnauthorized,
			args: []interface{}{candishared.ErrUnauthorized},
			want: `{"error":"unauthorized"}`,
		},
		{
			name: "Testcase #4: Validation error with detail",
			code: http.StatusBadRequest,
			args: []interface{}{candishared.NewValidationError(map[string]string{"event": "required"})},
			want: `{"error":"bad_request","errors":{"event":"required"}}`,
		},
		{
			name: "Testcase #5: Multi error",
			code: http.StatusBadRequest,
			args: []interface{}{candihelper.NewMultiError().Append("orderNo", errors.New("too long"))},
			want: `{"error":"bad_request","errors":{"orderNo":"too long"}}`,
		},
		{
			name: "Testcase #6: Error without param",
			code: http.StatusNotFound,
			args: []interface{}{`Resource "GET /x" not found`},
			want: `{"error":"Not Found","message":"Resource \"GET /x\" not found"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			resp := NewHTTPResponse(tt.code, tt.args...)
			assert.NoError(t, resp.JSON(rec))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.code, resp.Code())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestNewHTTPErrorResponse(t *testing.T) {
	resp := NewHTTPErrorResponse(&candishared.TransitionError{From: "pending", To: "done"})
	assert.Equal(t, http.StatusConflict, resp.Code())
	assert.Equal(t, "invalid_transition", resp.Error)
	assert.False(t, resp.OK)
}
