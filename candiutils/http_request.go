package candiutils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/golangid/orderpush/tracer"
)

// HTTPRequest interface
type HTTPRequest interface {
	Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) (respBody []byte, respCode int, err error)
}

// HTTPRequestOption option
type HTTPRequestOption struct {
	Retries           int
	SleepBetweenRetry time.Duration
	Timeout           time.Duration
	MinHTTPErrorCode  int
}

type httpRequestImpl struct {
	client           *httpclient.Client
	minHTTPErrorCode int
}

// NewHTTPRequest constructor, heimdall client with constant backoff retrier
func NewHTTPRequest(opt HTTPRequestOption) HTTPRequest {
	if opt.Timeout <= 0 {
		opt.Timeout = 10 * time.Second
	}
	if opt.MinHTTPErrorCode <= 0 {
		opt.MinHTTPErrorCode = http.StatusBadRequest
	}

	// define a maximum jitter interval
	maximumJitterInterval := 5 * time.Millisecond
	backoff := heimdall.NewConstantBackoff(opt.SleepBetweenRetry, maximumJitterInterval)

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(opt.Timeout),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		httpclient.WithRetryCount(opt.Retries),
	)

	return &httpRequestImpl{
		client:           client,
		minHTTPErrorCode: opt.MinHTTPErrorCode,
	}
}

// Do http client call, return error when response code >= min http error code
func (r *httpRequestImpl) Do(ctx context.Context, method, url string, requestBody []byte, headers map[string]string) (respBody []byte, respCode int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, fmt.Sprintf("HTTP Request: %s", method))
	defer func() { trace.SetError(err); trace.Finish() }()

	var body io.Reader
	if requestBody != nil {
		body = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	trace.SetTag("http.method", method)
	trace.SetTag("http.url", req.URL.String())
	trace.InjectHTTPHeader(req)

	// heimdall return last response together with error when server keep returning 5xx
	resp, err := r.client.Do(req)
	if resp == nil {
		if err == nil {
			err = errors.New("empty response")
		}
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	trace.SetTag("response.code", resp.StatusCode)

	if resp.StatusCode >= r.minHTTPErrorCode {
		err = errors.New(resp.Status)
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil {
			if errResp.Message != "" {
				err = errors.New(errResp.Message)
			} else if errResp.Error != "" {
				err = errors.New(errResp.Error)
			}
		}
		return respBody, resp.StatusCode, err
	}

	return respBody, resp.StatusCode, nil
}
