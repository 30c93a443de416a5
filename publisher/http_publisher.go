package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/candiutils"
	"github.com/golangid/orderpush/tracer"
)

// HTTPPublisher call remote "POST /emit" of realtime core
type HTTPPublisher struct {
	url     string
	secret  string
	request candiutils.HTTPRequest
}

// NewHTTPPublisher constructor, baseURL without trailing slash
func NewHTTPPublisher(baseURL, secret string) *HTTPPublisher {
	return &HTTPPublisher{
		url:    baseURL + "/emit",
		secret: secret,
		request: candiutils.NewHTTPRequest(candiutils.HTTPRequestOption{
			Retries:           3,
			SleepBetweenRetry: 200 * time.Millisecond,
			Timeout:           5 * time.Second,
		}),
	}
}

// Publish method
func (p *HTTPPublisher) Publish(ctx context.Context, eventName, orderNo string, payload map[string]interface{}) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "HTTPPublisher:Publish")
	defer func() { trace.SetError(err); trace.Finish() }()

	body, err := json.Marshal(map[string]interface{}{
		"event":   eventName,
		"orderNo": orderNo,
		"payload": payload,
	})
	if err != nil {
		return err
	}

	_, code, err := p.request.Do(ctx, http.MethodPost, p.url, body, map[string]string{
		candihelper.HeaderAuthorization: "Bearer " + p.secret,
		candihelper.HeaderContentType:   candihelper.HeaderMIMEApplicationJSON,
	})
	switch code {
	case http.StatusUnauthorized:
		return candishared.ErrUnauthorized
	case http.StatusBadRequest:
		return candishared.ErrBadRequest
	}
	if err != nil {
		return fmt.Errorf("publish %s order %s: %w", eventName, orderNo, err)
	}
	return nil
}
