package orderwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/candiutils"
)

// HTTPFetcher read order from "GET /shops/{shopID}/orders/{orderNo}"
type HTTPFetcher struct {
	baseURL string
	shopID  string
	request candiutils.HTTPRequest
}

// NewHTTPFetcher constructor, baseURL of order service
func NewHTTPFetcher(baseURL, shopID string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		shopID:  shopID,
		request: candiutils.NewHTTPRequest(candiutils.HTTPRequestOption{
			Retries:           2,
			SleepBetweenRetry: 500 * time.Millisecond,
			Timeout:           5 * time.Second,
		}),
	}
}

// FetchStatus method
func (f *HTTPFetcher) FetchStatus(ctx context.Context, orderNo string) (string, error) {
	endpoint := fmt.Sprintf("%s/shops/%s/orders/%s", f.baseURL, url.PathEscape(f.shopID), url.PathEscape(orderNo))
	body, code, err := f.request.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if code == http.StatusNotFound {
		return "", candishared.ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}

	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode order: %w", err)
	}
	return resp.Data.Status, nil
}
