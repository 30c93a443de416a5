package resthandler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/usecase"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/middleware"
	"github.com/golangid/orderpush/tracer"
	"github.com/golangid/orderpush/wrapper"
)

const maxPublishBody = int64(candihelper.MByte)

// RestHandler handler
type RestHandler struct {
	mw      *middleware.Middleware
	gateway usecase.Gateway
	broker  usecase.Broker
}

// NewRestHandler create new rest handler
func NewRestHandler(mw *middleware.Middleware, gateway usecase.Gateway, broker usecase.Broker) *RestHandler {
	return &RestHandler{
		mw:      mw,
		gateway: gateway,
		broker:  broker,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	root.POST("/emit", h.emit)
	root.GET("/stats", h.stats, h.mw.HTTPBasicAuth)
}

func (h *RestHandler) emit(w http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceFromHeader(req.Context(), "RealtimeDeliveryREST:Emit", req.Header)
	defer trace.Finish()

	// malformed body still go through gateway so secret is checked first
	var payload domain.PublishRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxPublishBody)).Decode(&payload); err != nil {
		logger.LogWf("realtime: malformed publish body: %v", err)
		payload = domain.PublishRequest{}
	}

	if err := h.gateway.Publish(ctx, middleware.BearerToken(req), payload.Event, payload.OrderNo, payload.Payload); err != nil {
		trace.SetError(err)
		wrapper.NewHTTPErrorResponse(err).JSON(w)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK).JSON(w)
}

func (h *RestHandler) stats(w http.ResponseWriter, req *http.Request) {
	stats, err := h.broker.Stats(req.Context())
	if err != nil {
		wrapper.NewHTTPErrorResponse(err).JSON(w)
		return
	}
	wrapper.NewHTTPResponse(http.StatusOK, stats).JSON(w)
}
