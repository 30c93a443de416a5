package usecase

import (
	"sync"
	"sync/atomic"

	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/google/uuid"
)

// ConnectionOption option func
type ConnectionOption func(*Connection)

// WithoutStaffUpdates connection not joined to staff group
func WithoutStaffUpdates() ConnectionOption {
	return func(c *Connection) {
		c.staff = false
	}
}

// Connection server side handle of one client
type Connection struct {
	id      string
	staff   bool
	state   int32
	dropped uint64

	send      chan domain.Message
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(bufferSize int, opts ...ConnectionOption) *Connection {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	c := &Connection{
		id:    uuid.NewString(),
		staff: true,
		state: int32(domain.ConnConnecting),
		send:  make(chan domain.Message, bufferSize),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID connection identifier
func (c *Connection) ID() string {
	return c.id
}

// State current lifecycle state
func (c *Connection) State() domain.ConnState {
	return domain.ConnState(atomic.LoadInt32(&c.state))
}

// Activate mark connection ready for transport writes
func (c *Connection) Activate() {
	atomic.CompareAndSwapInt32(&c.state, int32(domain.ConnConnecting), int32(domain.ConnActive))
}

// Outbound messages waiting to be written, never closed, select with Done
func (c *Connection) Outbound() <-chan domain.Message {
	return c.send
}

// Done closed when connection is unregistered or broker stopped
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Dropped total messages discarded because outbound buffer was full
func (c *Connection) Dropped() uint64 {
	return atomic.LoadUint64(&c.dropped)
}

// enqueue only called from hub goroutine, never block. When buffer is full pending
// messages are discarded and the newest one is kept
func (c *Connection) enqueue(msg domain.Message) (dropped int, ok bool) {
	if c.State() == domain.ConnClosed {
		return 0, false
	}

	select {
	case c.send <- msg:
		return 0, true
	default:
	}

drain:
	for {
		select {
		case <-c.send:
			dropped++
		default:
			break drain
		}
	}
	atomic.AddUint64(&c.dropped, uint64(dropped))

	select {
	case c.send <- msg:
		return dropped, true
	default:
		atomic.AddUint64(&c.dropped, 1)
		return dropped + 1, false
	}
}

func (c *Connection) close() {
	c.closeOnce.Do(func() {
		atomic.StoreInt32(&c.state, int32(domain.ConnClosed))
		close(c.done)
	})
}
