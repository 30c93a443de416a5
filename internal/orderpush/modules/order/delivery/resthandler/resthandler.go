package resthandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	restserver "github.com/golangid/orderpush/codebase/app/rest_server"
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/usecase"
	"github.com/golangid/orderpush/middleware"
	"github.com/golangid/orderpush/tracer"
	"github.com/golangid/orderpush/wrapper"
)

const maxOrderBody = int64(64 * candihelper.KByte)

// RestHandler handler
type RestHandler struct {
	mw *middleware.Middleware
	uc usecase.OrderUsecase
}

// NewRestHandler create new rest handler
func NewRestHandler(mw *middleware.Middleware, uc usecase.OrderUsecase) *RestHandler {
	return &RestHandler{
		mw: mw,
		uc: uc,
	}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root interfaces.RESTRouter) {
	orders := root.Group("/shops/{shopID}/orders")
	orders.POST("/", h.createOrder)
	orders.GET("/{orderNo}", h.getOrder)
	orders.POST("/{orderNo}/ready", h.transition(domain.StatusReady))
	orders.POST("/{orderNo}/done", h.transition(domain.StatusDone))
}

func (h *RestHandler) createOrder(w http.ResponseWriter, req *http.Request) {
	trace, ctx := tracer.StartTraceFromHeader(req.Context(), "OrderDeliveryREST:CreateOrder", req.Header)
	defer trace.Finish()

	var payload domain.CreateOrderRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxOrderBody)).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		wrapper.NewHTTPResponse(http.StatusBadRequest, candishared.ErrBadRequest, "invalid request body").JSON(w)
		return
	}

	order, err := h.uc.CreateOrder(ctx, restserver.URLParam(req, "shopID"), payload)
	if err != nil {
		trace.SetError(err)
		wrapper.NewHTTPErrorResponse(err).JSON(w)
		return
	}

	wrapper.NewHTTPResponse(http.StatusCreated, order).JSON(w)
}

func (h *RestHandler) getOrder(w http.ResponseWriter, req *http.Request) {
	key, err := h.orderKey(req)
	if err != nil {
		wrapper.NewHTTPErrorResponse(err).JSON(w)
		return
	}

	order, err := h.uc.GetOrder(req.Context(), key)
	if err != nil {
		wrapper.NewHTTPErrorResponse(err).JSON(w)
		return
	}

	wrapper.NewHTTPResponse(http.StatusOK, order).JSON(w)
}

func (h *RestHandler) transition(status domain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		trace, ctx := tracer.StartTraceFromHeader(req.Context(), "OrderDeliveryREST:Transition", req.Header)
		defer trace.Finish()

		key, err := h.orderKey(req)
		if err != nil {
			wrapper.NewHTTPErrorResponse(err).JSON(w)
			return
		}

		order, err := h.uc.Transition(ctx, key, status)
		if err != nil {
			trace.SetError(err)
			wrapper.NewHTTPErrorResponse(err).JSON(w)
			return
		}

		wrapper.NewHTTPResponse(http.StatusOK, order).JSON(w)
	}
}

// orderKey from path, day query default to today
func (h *RestHandler) orderKey(req *http.Request) (domain.Key, error) {
	key := domain.Key{
		ShopID:  restserver.URLParam(req, "shopID"),
		OrderNo: restserver.URLParam(req, "orderNo"),
		Day:     req.URL.Query().Get("day"),
	}
	if key.Day == "" {
		key.Day = h.uc.Today()
	} else if _, err := time.Parse(candihelper.DateFormat, key.Day); err != nil {
		return key, candishared.NewValidationError(map[string]string{"day": "datetime=" + candihelper.DateFormat})
	}
	return key, nil
}
