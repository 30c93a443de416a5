package tracer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopTracer(t *testing.T) {
	trace, ctx := StartTraceWithContext(context.Background(), "test:operation")
	assert.NotNil(t, ctx)
	assert.Equal(t, ctx, trace.Context())

	trace.SetTag("order_no", "017")
	trace.Log("payload", map[string]string{"status": "ready"})
	trace.Log("raw", []byte("raw"))
	trace.SetError(errors.New("boom"))
	trace.SetError(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	trace.InjectHTTPHeader(req)
	trace.Finish()

	root, rootCtx := StartTraceFromHeader(context.Background(), "root", req.Header)
	assert.NotNil(t, rootCtx)
	root.Finish()
}
