package wrapper

import (
	"bufio"
	"errors"
	"net"
	"net/http"
)

// WrapHTTPResponseWriter wrapper for capture status code and response size
type WrapHTTPResponseWriter struct {
	statusCode int
	size       int
	rw         http.ResponseWriter
}

// NewWrapHTTPResponseWriter init new wrapper for http response writter
func NewWrapHTTPResponseWriter(httpResponseWriter http.ResponseWriter) *WrapHTTPResponseWriter {
	// Default the status code to 200
	return &WrapHTTPResponseWriter{statusCode: http.StatusOK, rw: httpResponseWriter}
}

// StatusCode give a way to get the Code
func (w *WrapHTTPResponseWriter) StatusCode() int {
	return w.statusCode
}

// Size written body size
func (w *WrapHTTPResponseWriter) Size() int {
	return w.size
}

// Header Satisfy the http.ResponseWriter interface
func (w *WrapHTTPResponseWriter) Header() http.Header {
	return w.rw.Header()
}

func (w *WrapHTTPResponseWriter) Write(data []byte) (int, error) {
	n, err := w.rw.Write(data)
	w.size += n
	return n, err
}

// WriteHeader method
func (w *WrapHTTPResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.rw.WriteHeader(statusCode)
}

// Hijack websocket upgrade need the underlying connection
func (w *WrapHTTPResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.rw.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not implement http.Hijacker")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hj.Hijack()
}

// Flush method
func (w *WrapHTTPResponseWriter) Flush() {
	if fl, ok := w.rw.(http.Flusher); ok {
		fl.Flush()
	}
}
