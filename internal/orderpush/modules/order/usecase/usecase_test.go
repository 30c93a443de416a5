package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/config/env"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository/memory"
	mocks "github.com/golangid/orderpush/pkg/mocks/publisher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, pub *mocks.Publisher, cfg NumberingConfig) (OrderUsecase, *memory.OrderRepoMemory) {
	repo := memory.NewOrderRepoMemory()
	uc := NewOrderUsecase(repo, NewNumbering(cfg, repo), pub,
		SetClock(func() time.Time { return fixedNow }), SetLocation(time.UTC))
	return uc, repo
}

func TestOrderUsecase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, explicit number", func(t *testing.T) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", "017", mock.Anything).Return(nil).Once()
		uc, _ := newTestUsecase(t, pub, NumberingConfig{})

		order, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: " 017 ", Name: "Budi"})
		require.NoError(t, err)
		assert.Equal(t, "017", order.OrderNo)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, "2026-10-14", order.Day)
	})

	t.Run("Testcase #2: Negative, same number same shop same day", func(t *testing.T) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", "017", mock.Anything).Return(nil).Once()
		uc, repo := newTestUsecase(t, pub, NumberingConfig{})

		_, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: "017", Name: "first"})
		require.NoError(t, err)
		_, err = uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: "017", Name: "second"})
		assert.ErrorIs(t, err, candishared.ErrOrderNumberConflict)

		stored, err := repo.Find(ctx, domain.Key{ShopID: "shop-1", Day: "2026-10-14", OrderNo: "017"})
		require.NoError(t, err)
		assert.Equal(t, "first", stored.Name)
	})

	t.Run("Testcase #3: Positive, generated sequential number skip used one", func(t *testing.T) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", mock.Anything, mock.Anything).Return(nil).Times(3)
		uc, _ := newTestUsecase(t, pub, NumberingConfig{Default: env.NumberingSequential, Digits: 3})

		_, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: "002"})
		require.NoError(t, err)

		first, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{})
		require.NoError(t, err)
		second, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{})
		require.NoError(t, err)
		assert.Equal(t, "001", first.OrderNo)
		assert.Equal(t, "003", second.OrderNo)
	})

	t.Run("Testcase #4: Negative, generator exhausted", func(t *testing.T) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", mock.Anything, mock.Anything).Return(nil)
		uc, _ := newTestUsecase(t, pub, NumberingConfig{Default: env.NumberingRandom, Digits: 1})

		created := map[string]struct{}{}
		var err error
		for i := 0; i < 200 && err == nil; i++ {
			var order *domain.Order
			order, err = uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{})
			if err == nil {
				_, dup := created[order.OrderNo]
				assert.False(t, dup, "generated number must be unique")
				created[order.OrderNo] = struct{}{}
			}
		}
		assert.ErrorIs(t, err, candishared.ErrOrderNumberConflict)
		assert.LessOrEqual(t, len(created), 9)
	})

	t.Run("Testcase #5: Negative, validation", func(t *testing.T) {
		uc, _ := newTestUsecase(t, mocks.NewPublisher(t), NumberingConfig{})

		_, err := uc.CreateOrder(ctx, " ", domain.CreateOrderRequest{})
		assert.ErrorIs(t, err, candishared.ErrBadRequest)

		_, err = uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{Items: []domain.Item{{Name: "latte", Quantity: 0}}})
		var vErr *candishared.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Fields, "quantity")
	})

	t.Run("Testcase #6: Positive, publish failure does not fail create", func(t *testing.T) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", "017", mock.Anything).Return(errors.New("down")).Once()
		uc, _ := newTestUsecase(t, pub, NumberingConfig{})

		_, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: "017"})
		assert.NoError(t, err)
	})
}

func TestOrderUsecase_Transition(t *testing.T) {
	ctx := context.Background()
	key := domain.Key{ShopID: "shop-1", Day: "2026-10-14", OrderNo: "017"}

	setup := func(t *testing.T) (OrderUsecase, *mocks.Publisher) {
		pub := mocks.NewPublisher(t)
		pub.On("Publish", mock.Anything, "order:created", "017", mock.Anything).Return(nil).Once()
		uc, _ := newTestUsecase(t, pub, NumberingConfig{})
		_, err := uc.CreateOrder(ctx, "shop-1", domain.CreateOrderRequest{OrderNo: "017", Name: "Budi"})
		require.NoError(t, err)
		return uc, pub
	}

	t.Run("Testcase #1: Positive, pending to ready to done", func(t *testing.T) {
		uc, pub := setup(t)
		pub.On("Publish", mock.Anything, "order:status", "017",
			map[string]interface{}{"status": "ready", "shopId": "shop-1", "name": "Budi"}).Return(nil).Once()
		pub.On("Publish", mock.Anything, "order:status", "017",
			map[string]interface{}{"status": "done", "shopId": "shop-1", "name": "Budi"}).Return(nil).Once()

		order, err := uc.Transition(ctx, key, domain.StatusReady)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusReady, order.Status)

		order, err = uc.Transition(ctx, key, domain.StatusDone)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDone, order.Status)
	})

	t.Run("Testcase #2: Negative, pending to done rejected without publish", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Transition(ctx, key, domain.StatusDone)
		assert.ErrorIs(t, err, candishared.ErrInvalidTransition)

		order, err := uc.GetOrder(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, order.Status)
	})

	t.Run("Testcase #3: Negative, repeat current status", func(t *testing.T) {
		uc, pub := setup(t)
		pub.On("Publish", mock.Anything, "order:status", "017", mock.Anything).Return(nil).Once()

		_, err := uc.Transition(ctx, key, domain.StatusReady)
		require.NoError(t, err)
		_, err = uc.Transition(ctx, key, domain.StatusReady)
		assert.ErrorIs(t, err, candishared.ErrInvalidTransition)
	})

	t.Run("Testcase #4: Negative, order not found", func(t *testing.T) {
		uc, _ := setup(t)
		_, err := uc.Transition(ctx, domain.Key{ShopID: "shop-1", Day: "2026-10-14", OrderNo: "404"}, domain.StatusReady)
		assert.ErrorIs(t, err, candishared.ErrOrderNotFound)
	})

	t.Run("Testcase #5: Concurrent transition only one win", func(t *testing.T) {
		uc, pub := setup(t)
		pub.On("Publish", mock.Anything, "order:status", "017", mock.Anything).Return(nil).Once()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			success int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := uc.Transition(ctx, key, domain.StatusReady); err == nil {
					mu.Lock()
					success++
					mu.Unlock()
				} else {
					assert.ErrorIs(t, err, candishared.ErrInvalidTransition)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, success)
	})
}

func TestNumbering_Generate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepoMemory()
	n := NewNumbering(NumberingConfig{
		Default: env.NumberingSequential,
		PerShop: map[string]string{"shop-r": env.NumberingRandom},
		Digits:  4,
	}, repo)

	no, err := n.Generate(ctx, "shop-1", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, "0001", no)

	for i := 0; i < 20; i++ {
		no, err = n.Generate(ctx, "shop-r", "2026-10-14")
		require.NoError(t, err)
		assert.Len(t, no, 4)
		assert.NotEqual(t, "0000", no)
	}

	seq, _ := repo.NextSequence(ctx, "shop-r", "2026-10-14")
	assert.Equal(t, int64(1), seq, "random mode must not consume sequence")
}
