package orderwatch

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golangid/orderpush/logger"
	"github.com/gorilla/websocket"
)

const (
	defaultPollInterval = 30 * time.Second
	eventOrderStatus    = "order:status"
)

// Watcher follow one order, push event first and periodic pull as safety net
type Watcher struct {
	// WSURL websocket endpoint, e.g. ws://host:3000/ws
	WSURL   string
	OrderNo string
	Fetcher Fetcher
	Applier *Applier
	// Interval between reconciliation pull, default 30s
	Interval time.Duration
	// Header sent on websocket handshake, e.g. Origin
	Header http.Header
	Dialer *websocket.Dialer
}

type serverMessage struct {
	Event   string `json:"event"`
	Payload struct {
		OrderNo string `json:"orderNo"`
		Status  string `json:"status"`
	} `json:"payload"`
}

// Watch block until ctx is cancelled or connection closed, return nil on cancel
func (w *Watcher) Watch(ctx context.Context) error {
	if w.OrderNo == "" {
		return errors.New("orderwatch: order number required")
	}
	if w.Applier == nil {
		w.Applier = &Applier{}
	}
	dialer := w.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	ws, _, err := dialer.DialContext(ctx, w.WSURL, w.Header)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		ws.Close()
		wg.Wait()
	}()

	if err := ws.WriteJSON(map[string]string{"type": "join-order", "orderNo": w.OrderNo}); err != nil {
		return err
	}
	// pull after join, an event published before join is covered by this fetch
	w.reconcile(ctx)

	wg.Add(2)
	go func() {
		defer wg.Done()
		w.poll(ctx)
	}()
	go func() {
		defer wg.Done()
		<-ctx.Done()
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		ws.Close()
	}()

	for {
		var msg serverMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if msg.Event == eventOrderStatus && msg.Payload.OrderNo == w.OrderNo {
			w.Applier.Apply(msg.Payload.Status)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.reconcile(ctx)
		}
	}
}

func (w *Watcher) reconcile(ctx context.Context) {
	if w.Fetcher == nil {
		return
	}
	status, err := w.Fetcher.FetchStatus(ctx, w.OrderNo)
	if err != nil {
		if ctx.Err() == nil {
			logger.LogWf("orderwatch: fetch order %s: %v", w.OrderNo, err)
		}
		return
	}
	w.Applier.Apply(status)
}
