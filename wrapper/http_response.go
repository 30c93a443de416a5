package wrapper

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
)

// HTTPResponse default json response format, success is {"ok":true,...}, failure is {"error":"<code>",...}
type HTTPResponse struct {
	OK      bool        `json:"ok,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`

	code int
}

// NewHTTPResponse for create common response, error param set error code and detail
func NewHTTPResponse(code int, params ...interface{}) *HTTPResponse {
	resp := &HTTPResponse{code: code, OK: code < http.StatusBadRequest}

	for _, param := range params {
		switch val := param.(type) {
		case candihelper.MultiError:
			resp.Error = candishared.ErrBadRequest.Error()
			resp.Errors = val.ToMap()
		case error:
			resp.Error = candishared.ErrorCode(val)
			var vErr *candishared.ValidationError
			if errors.As(val, &vErr) {
				resp.Errors = vErr.Fields
			}
		case string:
			resp.Message = val
		default:
			resp.Data = param
		}
	}

	if !resp.OK && resp.Error == "" {
		resp.Error = http.StatusText(code)
	}
	return resp
}

// NewHTTPErrorResponse response from error, status code derived from error kind
func NewHTTPErrorResponse(err error) *HTTPResponse {
	return NewHTTPResponse(candishared.HTTPStatusCode(err), err)
}

// Code http status code of response
func (resp *HTTPResponse) Code() int {
	return resp.code
}

// JSON for set http JSON response (Content-Type: application/json) with parameter is http response writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	w.WriteHeader(resp.code)
	return json.NewEncoder(w).Encode(resp)
}
