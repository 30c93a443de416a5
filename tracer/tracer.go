package tracer

import (
	"context"
	"encoding/json"
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
	ext "github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
)

// Tracer span abstraction
type Tracer interface {
	Context() context.Context
	SetTag(key string, value interface{})
	SetError(err error)
	Log(key string, value interface{})
	InjectHTTPHeader(req *http.Request)
	Finish()
}

type tracerImpl struct {
	ctx  context.Context
	span opentracing.Span
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) Tracer {
	if ctx == nil {
		ctx = context.Background()
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, operationName)
	return &tracerImpl{ctx: ctx, span: span}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// StartTraceFromHeader starting root span, continue remote span if header carry one
func StartTraceFromHeader(ctx context.Context, operationName string, header http.Header) (Tracer, context.Context) {
	var opts []opentracing.StartSpanOption
	globalTracer := opentracing.GlobalTracer()
	if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(header)); err == nil {
		opts = append(opts, ext.RPCServerOption(spanCtx))
	}
	span := globalTracer.StartSpan(operationName, opts...)
	ctx = opentracing.ContextWithSpan(ctx, span)
	return &tracerImpl{ctx: ctx, span: span}, ctx
}

func (t *tracerImpl) Context() context.Context {
	return t.ctx
}

func (t *tracerImpl) SetTag(key string, value interface{}) {
	t.span.SetTag(key, value)
}

func (t *tracerImpl) SetError(err error) {
	if err == nil {
		return
	}
	ext.Error.Set(t.span, true)
	t.span.LogFields(otlog.String("error.message", err.Error()))
}

func (t *tracerImpl) Log(key string, value interface{}) {
	switch v := value.(type) {
	case string:
		t.span.LogKV(key, v)
	case []byte:
		t.span.LogKV(key, string(v))
	default:
		b, _ := json.Marshal(v)
		t.span.LogKV(key, string(b))
	}
}

func (t *tracerImpl) InjectHTTPHeader(req *http.Request) {
	ext.SpanKindRPCClient.Set(t.span)
	opentracing.GlobalTracer().Inject(t.span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
}

func (t *tracerImpl) Finish() {
	t.span.Finish()
}
