package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pending(c *Connection) (msgs []domain.Message) {
	for {
		select {
		case msg := <-c.Outbound():
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func newTestHub(t *testing.T, opts ...HubOption) *Hub {
	h := NewHub(opts...)
	t.Cleanup(func() { h.Disconnect(context.Background()) })
	return h
}

func statusEvent(orderNo, status string) domain.Event {
	return domain.Event{
		Name:    domain.EventOrderStatus,
		OrderNo: orderNo,
		Payload: map[string]interface{}{"orderNo": orderNo, "status": status},
	}
}

func TestHub_Fanout(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, only room member receive event", func(t *testing.T) {
		h := newTestHub(t)
		a, err := h.Register(ctx)
		require.NoError(t, err)
		b, err := h.Register(ctx)
		require.NoError(t, err)
		require.NoError(t, h.Join(ctx, a, "017"))
		require.NoError(t, h.Join(ctx, b, "018"))

		delivered, err := h.Fanout(ctx, statusEvent("017", "ready"))
		assert.NoError(t, err)
		assert.Equal(t, 1, delivered)

		msgs := pending(a)
		require.Len(t, msgs, 1)
		assert.Equal(t, domain.EventOrderStatus, msgs[0].Event)
		assert.Equal(t, "ready", msgs[0].Payload["status"])
		assert.Empty(t, pending(b))
	})

	t.Run("Testcase #2: Positive, no replay for late joiner", func(t *testing.T) {
		h := newTestHub(t)
		a, _ := h.Register(ctx)

		delivered, err := h.Fanout(ctx, statusEvent("017", "ready"))
		assert.NoError(t, err)
		assert.Zero(t, delivered)

		require.NoError(t, h.Join(ctx, a, "017"))
		assert.Empty(t, pending(a))
	})

	t.Run("Testcase #3: Positive, leave stop delivery", func(t *testing.T) {
		h := newTestHub(t)
		a, _ := h.Register(ctx)
		require.NoError(t, h.Join(ctx, a, "017"))
		require.NoError(t, h.Leave(ctx, a, "017"))
		require.NoError(t, h.Leave(ctx, a, "999"))

		h.Fanout(ctx, statusEvent("017", "ready"))
		assert.Empty(t, pending(a))

		stats, _ := h.Stats(ctx)
		assert.Equal(t, 0, stats.Rooms)
	})

	t.Run("Testcase #4: Positive, per room order preserved", func(t *testing.T) {
		h := newTestHub(t, SetSendBuffer(16))
		a, _ := h.Register(ctx)
		require.NoError(t, h.Join(ctx, a, "017"))
		require.NoError(t, h.Join(ctx, a, "017"))

		for i := 0; i < 5; i++ {
			h.Fanout(ctx, statusEvent("017", fmt.Sprint(i)))
		}
		msgs := pending(a)
		require.Len(t, msgs, 5)
		for i, msg := range msgs {
			assert.Equal(t, fmt.Sprint(i), msg.Payload["status"])
		}
	})

	t.Run("Testcase #5: Negative, full buffer drop pending message and keep newest", func(t *testing.T) {
		h := newTestHub(t, SetSendBuffer(2))
		a, _ := h.Register(ctx)
		b, _ := h.Register(ctx)
		require.NoError(t, h.Join(ctx, a, "017"))
		require.NoError(t, h.Join(ctx, b, "017"))

		h.Fanout(ctx, statusEvent("017", "1"))
		h.Fanout(ctx, statusEvent("017", "2"))
		pending(b)
		delivered, err := h.Fanout(ctx, statusEvent("017", "3"))
		assert.NoError(t, err)
		assert.Equal(t, 2, delivered)

		msgs := pending(a)
		require.Len(t, msgs, 1)
		assert.Equal(t, "3", msgs[0].Payload["status"])
		assert.Equal(t, uint64(2), a.Dropped())

		bMsgs := pending(b)
		require.Len(t, bMsgs, 1)
		assert.Zero(t, b.Dropped())
	})
}

func TestHub_BroadcastToStaff(t *testing.T) {
	ctx := context.Background()
	h := newTestHub(t)

	staff, _ := h.Register(ctx)
	customer, _ := h.Register(ctx, WithoutStaffUpdates())

	delivered, err := h.BroadcastToStaff(ctx, domain.Event{Name: "staff:order:status", Payload: map[string]interface{}{}})
	assert.NoError(t, err)
	assert.Equal(t, 1, delivered)
	assert.Len(t, pending(staff), 1)
	assert.Empty(t, pending(customer))

	stats, _ := h.Stats(ctx)
	assert.Equal(t, domain.Stats{Connections: 2, Rooms: 0, Staff: 1}, stats)
}

func TestHub_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, idempotent and remove every membership", func(t *testing.T) {
		h := newTestHub(t)
		a, _ := h.Register(ctx)
		assert.Equal(t, domain.ConnConnecting, a.State())
		a.Activate()
		assert.Equal(t, domain.ConnActive, a.State())

		require.NoError(t, h.Join(ctx, a, "017"))
		require.NoError(t, h.Join(ctx, a, "018"))
		rooms, _ := h.Rooms(ctx, a)
		assert.Equal(t, []string{"017", "018"}, rooms)

		assert.NoError(t, h.Unregister(ctx, a))
		assert.NoError(t, h.Unregister(ctx, a))
		assert.Equal(t, domain.ConnClosed, a.State())

		select {
		case <-a.Done():
		default:
			t.Fatal("connection done channel must be closed")
		}

		stats, _ := h.Stats(ctx)
		assert.Equal(t, domain.Stats{}, stats)

		delivered, _ := h.Fanout(ctx, statusEvent("017", "ready"))
		assert.Zero(t, delivered)
	})

	t.Run("Testcase #2: Negative, join after unregister", func(t *testing.T) {
		h := newTestHub(t)
		a, _ := h.Register(ctx)
		h.Unregister(ctx, a)

		err := h.Join(ctx, a, "017")
		assert.True(t, errors.Is(err, ErrConnectionClosed))
	})

	t.Run("Testcase #3: Negative, join blank order number", func(t *testing.T) {
		h := newTestHub(t)
		a, _ := h.Register(ctx)

		err := h.Join(ctx, a, "  ")
		assert.True(t, errors.Is(err, candishared.ErrBadRequest))
	})
}

func TestHub_Disconnect(t *testing.T) {
	ctx := context.Background()
	h := NewHub()
	a, _ := h.Register(ctx)
	require.NoError(t, h.Join(ctx, a, "017"))

	assert.NoError(t, h.Disconnect(ctx))
	assert.NoError(t, h.Disconnect(ctx))
	assert.Equal(t, domain.ConnClosed, a.State())

	_, err := h.Fanout(ctx, statusEvent("017", "ready"))
	assert.True(t, errors.Is(err, candishared.ErrHubClosed))
	_, err = h.Register(ctx)
	assert.True(t, errors.Is(err, candishared.ErrHubClosed))
	assert.NoError(t, h.Unregister(ctx, a))
}

func TestHub_ContextCanceled(t *testing.T) {
	h := newTestHub(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := make(chan struct{})
	release := make(chan struct{})
	go h.exec(context.Background(), func() {
		close(blocked)
		<-release
	})
	<-blocked

	_, err := h.Register(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	close(release)
}
