package wshandler

import (
	"context"
	"errors"
	"time"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/usecase"
	"github.com/golangid/orderpush/logger"
	"github.com/gorilla/websocket"
	"go.uber.org/zap/zapcore"
)

// client pump pair between one websocket and its registry connection
type client struct {
	ws       *websocket.Conn
	conn     *usecase.Connection
	registry usecase.Registry
	opt      Option
}

func (c *client) readPump(ctx context.Context) {
	defer c.registry.Unregister(ctx, c.conn)

	c.ws.SetReadLimit(c.opt.MaxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(c.opt.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.opt.PongWait))
	})

	for {
		var msg domain.ClientMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log(zapcore.InfoLevel, err.Error(), "realtime:read", c.conn.ID())
			}
			return
		}

		var err error
		switch msg.Type {
		case domain.MessageJoinOrder:
			err = c.registry.Join(ctx, c.conn, msg.OrderNo)
		case domain.MessageLeaveOrder:
			err = c.registry.Leave(ctx, c.conn, msg.OrderNo)
		default:
			logger.Log(zapcore.DebugLevel, "unknown message type "+msg.Type, "realtime:read", c.conn.ID())
		}

		if errors.Is(err, usecase.ErrConnectionClosed) || errors.Is(err, candishared.ErrHubClosed) {
			return
		}
		if err != nil {
			logger.Log(zapcore.WarnLevel, err.Error(), "realtime:read", c.conn.ID())
		}
	}
}

func (c *client) writePump(ctx context.Context) {
	pingPeriod := (c.opt.PongWait * 9) / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case msg := <-c.conn.Outbound():
			c.ws.SetWriteDeadline(time.Now().Add(c.opt.WriteWait))
			if err := c.ws.WriteJSON(msg); err != nil {
				c.deliveryFailed(ctx, err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(c.opt.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.deliveryFailed(ctx, err)
				return
			}

		case <-c.conn.Done():
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(c.opt.WriteWait))
			return
		}
	}
}

func (c *client) deliveryFailed(ctx context.Context, err error) {
	logger.Log(zapcore.WarnLevel, candishared.ErrDeliveryFailure.Error()+": "+err.Error(), "realtime:write", c.conn.ID())
	c.registry.Unregister(ctx, c.conn)
}
