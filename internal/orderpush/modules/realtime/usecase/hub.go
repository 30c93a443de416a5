package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/logger"
)

// ErrConnectionClosed operation on unregistered connection
var ErrConnectionClosed = errors.New("connection closed")

const defaultSendBuffer = 32

// HubOption option func
type HubOption func(*Hub)

// SetSendBuffer outbound buffer size for each new connection
func SetSendBuffer(size int) HubOption {
	return func(h *Hub) {
		if size > 0 {
			h.sendBuffer = size
		}
	}
}

type member struct {
	conn  *Connection
	rooms map[string]struct{}
}

// Hub connection registry and room broker. All membership state is owned by run goroutine,
// every operation is executed there in arrival order
type Hub struct {
	sendBuffer int

	ops       chan func()
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	members map[string]*member
	rooms   map[string]*group
	staff   *group
}

// NewHub start hub goroutine
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		sendBuffer: defaultSendBuffer,
		ops:        make(chan func()),
		quit:       make(chan struct{}),
		stopped:    make(chan struct{}),
		members:    make(map[string]*member),
		rooms:      make(map[string]*group),
		staff:      newGroup("staff"),
	}
	for _, opt := range opts {
		opt(h)
	}

	go h.run()
	return h
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case op := <-h.ops:
			op()
		case <-h.quit:
			for id, m := range h.members {
				m.conn.close()
				delete(h.members, id)
			}
			h.rooms = make(map[string]*group)
			h.staff = newGroup("staff")
			return
		}
	}
}

// exec run fn on hub goroutine and wait until it returns
func (h *Hub) exec(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	op := func() {
		defer close(done)
		fn()
	}

	select {
	case h.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	case <-h.quit:
		return candishared.ErrHubClosed
	}

	<-done
	return nil
}

// Register new connection, joined to staff group unless WithoutStaffUpdates given
func (h *Hub) Register(ctx context.Context, opts ...ConnectionOption) (*Connection, error) {
	conn := newConnection(h.sendBuffer, opts...)
	err := h.exec(ctx, func() {
		h.members[conn.id] = &member{conn: conn, rooms: make(map[string]struct{})}
		if conn.staff {
			h.staff.add(conn)
		}
	})
	if err != nil {
		conn.close()
		return nil, err
	}
	return conn, nil
}

// Join add connection to order room, joining the same room twice is no-op
func (h *Hub) Join(ctx context.Context, conn *Connection, orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return fmt.Errorf("%w: orderNo required", candishared.ErrBadRequest)
	}

	var opErr error
	err := h.exec(ctx, func() {
		m, ok := h.members[conn.id]
		if !ok {
			opErr = ErrConnectionClosed
			return
		}
		room, ok := h.rooms[orderNo]
		if !ok {
			room = newGroup(orderNo)
			h.rooms[orderNo] = room
		}
		room.add(conn)
		m.rooms[orderNo] = struct{}{}
	})
	if err != nil {
		return err
	}
	return opErr
}

// Leave remove connection from order room, leaving a room never joined is no-op
func (h *Hub) Leave(ctx context.Context, conn *Connection, orderNo string) error {
	orderNo = strings.TrimSpace(orderNo)
	return h.exec(ctx, func() {
		m, ok := h.members[conn.id]
		if !ok {
			return
		}
		delete(m.rooms, orderNo)
		h.leaveRoom(orderNo, conn.id)
	})
}

// Unregister close connection and drop every membership
func (h *Hub) Unregister(ctx context.Context, conn *Connection) error {
	conn.close()
	err := h.exec(ctx, func() {
		m, ok := h.members[conn.id]
		if !ok {
			return
		}
		for room := range m.rooms {
			h.leaveRoom(room, conn.id)
		}
		h.staff.remove(conn.id)
		delete(h.members, conn.id)
	})
	if errors.Is(err, candishared.ErrHubClosed) {
		return nil
	}
	return err
}

func (h *Hub) leaveRoom(orderNo, connID string) {
	room, ok := h.rooms[orderNo]
	if !ok {
		return
	}
	room.remove(connID)
	if room.len() == 0 {
		delete(h.rooms, orderNo)
	}
}

// Rooms sorted snapshot of rooms joined by connection
func (h *Hub) Rooms(ctx context.Context, conn *Connection) (rooms []string, err error) {
	err = h.exec(ctx, func() {
		m, ok := h.members[conn.id]
		if !ok {
			return
		}
		for room := range m.rooms {
			rooms = append(rooms, room)
		}
	})
	sort.Strings(rooms)
	return rooms, err
}

// Fanout deliver event to current member of room event.OrderNo, no replay for later join
func (h *Hub) Fanout(ctx context.Context, event domain.Event) (delivered int, err error) {
	msg := event.Message()
	err = h.exec(ctx, func() {
		room, ok := h.rooms[event.OrderNo]
		if !ok {
			return
		}
		delivered = room.deliver(msg)
	})
	return delivered, err
}

// BroadcastToStaff deliver event to staff group
func (h *Hub) BroadcastToStaff(ctx context.Context, event domain.Event) (delivered int, err error) {
	msg := event.Message()
	err = h.exec(ctx, func() {
		delivered = h.staff.deliver(msg)
	})
	return delivered, err
}

// Stats snapshot of registry size
func (h *Hub) Stats(ctx context.Context) (stats domain.Stats, err error) {
	err = h.exec(ctx, func() {
		stats = domain.Stats{
			Connections: len(h.members),
			Rooms:       len(h.rooms),
			Staff:       h.staff.len(),
		}
	})
	return stats, err
}

// Disconnect stop hub and close every connection
func (h *Hub) Disconnect(ctx context.Context) error {
	deferFunc := logger.LogWithDefer("realtime: stopping hub...")
	defer deferFunc()

	h.closeOnce.Do(func() { close(h.quit) })
	select {
	case <-h.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
