package wshandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/codebase/interfaces"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/usecase"
	"github.com/golangid/orderpush/logger"
	"github.com/gorilla/websocket"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 4 * candihelper.KByte
)

// Option websocket handler option
type Option struct {
	AllowedOrigins []string
	MaxMessageSize int64
	WriteWait      time.Duration
	PongWait       time.Duration
}

// WSHandler websocket transport for connection registry
type WSHandler struct {
	registry usecase.Registry
	upgrader websocket.Upgrader
	opt      Option
}

// NewWSHandler constructor
func NewWSHandler(registry usecase.Registry, opt Option) *WSHandler {
	if opt.MaxMessageSize <= 0 {
		opt.MaxMessageSize = int64(defaultMaxMessageSize)
	}
	if opt.WriteWait <= 0 {
		opt.WriteWait = defaultWriteWait
	}
	if opt.PongWait <= 0 {
		opt.PongWait = defaultPongWait
	}

	return &WSHandler{
		registry: registry,
		opt:      opt,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(opt.AllowedOrigins),
		},
	}
}

// Mount handler with root "/"
func (h *WSHandler) Mount(root interfaces.RESTRouter) {
	root.GET("/ws", h.serveWS)
}

func (h *WSHandler) serveWS(w http.ResponseWriter, req *http.Request) {
	var opts []usecase.ConnectionOption
	if staff := req.URL.Query().Get("staff"); staff == "0" || strings.EqualFold(staff, "false") {
		opts = append(opts, usecase.WithoutStaffUpdates())
	}

	ws, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		logger.LogWf("realtime: websocket upgrade failed: %v", err)
		return
	}

	ctx := context.Background()
	conn, err := h.registry.Register(ctx, opts...)
	if err != nil {
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()), time.Now().Add(h.opt.WriteWait))
		ws.Close()
		return
	}

	c := &client{
		ws:       ws,
		conn:     conn,
		registry: h.registry,
		opt:      h.opt,
	}
	conn.Activate()
	go c.writePump(ctx)
	go c.readPump(ctx)
}

func checkOrigin(allowed []string) func(req *http.Request) bool {
	return func(req *http.Request) bool {
		origin := req.Header.Get(candihelper.HeaderOrigin)
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}
