package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/candishared"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/domain"
	"github.com/golangid/orderpush/internal/orderpush/modules/order/repository/interfaces"
	realtimedomain "github.com/golangid/orderpush/internal/orderpush/modules/realtime/domain"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/publisher"
	"github.com/golangid/orderpush/tracer"
	"github.com/golangid/orderpush/validator"
)

type orderUsecaseImpl struct {
	repo      interfaces.OrderRepository
	numbering Numbering
	publisher publisher.Publisher
	validator *validator.StructValidator
	location  *time.Location
	now       func() time.Time
}

// OptionFunc option func
type OptionFunc func(*orderUsecaseImpl)

// SetClock override clock
func SetClock(now func() time.Time) OptionFunc {
	return func(uc *orderUsecaseImpl) {
		uc.now = now
	}
}

// SetLocation timezone used to compute order day
func SetLocation(loc *time.Location) OptionFunc {
	return func(uc *orderUsecaseImpl) {
		if loc != nil {
			uc.location = loc
		}
	}
}

// NewOrderUsecase usecase impl constructor
func NewOrderUsecase(repo interfaces.OrderRepository, numbering Numbering, pub publisher.Publisher, opts ...OptionFunc) OrderUsecase {
	uc := &orderUsecaseImpl{
		repo:      repo,
		numbering: numbering,
		publisher: pub,
		validator: validator.NewStructValidator(),
		location:  time.Local,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *orderUsecaseImpl) Today() string {
	return uc.now().In(uc.location).Format(candihelper.DateFormat)
}

func (uc *orderUsecaseImpl) CreateOrder(ctx context.Context, shopID string, req domain.CreateOrderRequest) (order *domain.Order, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "OrderUsecase:CreateOrder")
	defer func() { trace.SetError(err); trace.Finish() }()

	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, candishared.NewValidationError(map[string]string{"shopId": "notblank"})
	}
	if err = uc.validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	now := uc.now()
	order = &domain.Order{
		OrderNo:   strings.TrimSpace(req.OrderNo),
		ShopID:    shopID,
		Day:       now.In(uc.location).Format(candihelper.DateFormat),
		Status:    domain.StatusPending,
		Name:      strings.TrimSpace(req.Name),
		Items:     req.Items,
		Reference: req.Reference,
		CreatedAt: now,
		UpdatedAt: now,
	}
	trace.SetTag("shopId", shopID)
	trace.SetTag("day", order.Day)

	if order.OrderNo != "" {
		if err = uc.repo.Create(ctx, order); err != nil {
			return nil, err
		}
	} else if err = uc.createGenerated(ctx, order); err != nil {
		return nil, err
	}

	trace.SetTag("orderNo", order.OrderNo)
	uc.notify(ctx, realtimedomain.EventOrderCreated, order)
	return order, nil
}

// createGenerated retry on collision, a generated number may clash with a human chosen one
func (uc *orderUsecaseImpl) createGenerated(ctx context.Context, order *domain.Order) error {
	for attempt := 0; attempt < maxGenerateAttempt; attempt++ {
		orderNo, err := uc.numbering.Generate(ctx, order.ShopID, order.Day)
		if err != nil {
			return err
		}
		order.OrderNo = orderNo
		err = uc.repo.Create(ctx, order)
		if !errors.Is(err, candishared.ErrOrderNumberConflict) {
			return err
		}
		logger.LogWf("order: generated number %s already used by shop %s on %s, retrying", orderNo, order.ShopID, order.Day)
	}
	order.OrderNo = ""
	return fmt.Errorf("%w: no free order number after %d attempt", candishared.ErrOrderNumberConflict, maxGenerateAttempt)
}

func (uc *orderUsecaseImpl) GetOrder(ctx context.Context, key domain.Key) (*domain.Order, error) {
	return uc.repo.Find(ctx, key)
}

func (uc *orderUsecaseImpl) Transition(ctx context.Context, key domain.Key, requested domain.Status) (order *domain.Order, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "OrderUsecase:Transition")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("orderNo", key.OrderNo)
	trace.SetTag("requested", requested.String())

	current, err := uc.repo.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	next, err := domain.Transition(current, requested)
	if err != nil {
		return nil, err
	}

	// compare and set, a concurrent change since Find is reported as invalid transition
	order, err = uc.repo.UpdateStatus(ctx, key, current.Status, next, uc.now())
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, realtimedomain.EventOrderStatus, order)
	return order, nil
}

// notify best effort, committed change is never rolled back because of publish failure
func (uc *orderUsecaseImpl) notify(ctx context.Context, eventName string, order *domain.Order) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, eventName, order.OrderNo, order.NotificationPayload()); err != nil {
		logger.LogEf("order: publish %s order %s: %v", eventName, order.OrderNo, err)
	}
}
