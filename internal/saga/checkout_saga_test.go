package saga

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/proto/events"
	"github.com/gunpla-hub/service-storefront/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.CloudEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, _ string, ce kafka.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil && ce.Type == events.OrderPlaced {
		return p.err
	}
	p.events = append(p.events, ce)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ce := range p.events {
		out[i] = ce.Type
	}
	return out
}

type fixture struct {
	orders    *repository.MemoryOrderRepository
	discounts *repository.MemoryDiscountRepository
	publisher *recordingPublisher
	svc       *CheckoutSagaService
	code      *discount.Discount
}

func newFixture(t *testing.T, usageLimit, usedCount int) *fixture {
	t.Helper()
	f := &fixture{
		orders:    repository.NewMemoryOrderRepository(),
		discounts: repository.NewMemoryDiscountRepository(),
		publisher: &recordingPublisher{},
	}
	d, err := discount.NewDiscount(discount.Params{
		Code:       "GUNDAM20",
		Kind:       discount.KindPercentage,
		Value:      decimal.NewFromInt(20),
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidTo:    time.Now().Add(time.Hour),
		IsActive:   true,
		UsageLimit: &usageLimit,
		UsedCount:  usedCount,
	})
	require.NoError(t, err)
	require.NoError(t, f.discounts.Save(context.Background(), d))
	f.code = d

	logger := zap.NewNop()
	f.svc = NewCheckoutSagaService(f.orders, f.discounts, adapter.NewSimulatedGateway(0, logger), f.publisher, logger)
	return f
}

func (f *fixture) newOrder(t *testing.T, email string) *order.Order {
	t.Helper()
	id := f.code.ID()
	o, err := order.NewOrder("sess-0001", email,
		[]cart.LineItem{{ProductID: "1", Name: "RX-78-2", Category: "gundam", UnitPrice: decimal.NewFromInt(100), Quantity: 1}},
		order.Pricing{
			Subtotal:       decimal.NewFromInt(100),
			DiscountID:     &id,
			DiscountCode:   "GUNDAM20",
			DiscountAmount: decimal.NewFromInt(20),
			Total:          decimal.NewFromInt(80),
		},
		"USD",
		order.Address{FullName: "Amuro Ray", Street: "1 White Base", City: "Side 7", Country: "EF"},
		order.PaymentMethod{Type: order.PaymentCard, Last4: "4242"},
	)
	require.NoError(t, err)
	return o
}

func (f *fixture) usedCount(t *testing.T) int {
	t.Helper()
	d, err := f.discounts.FindByID(context.Background(), f.code.ID())
	require.NoError(t, err)
	return d.UsedCount()
}

func TestPlaceOrderSaga_Success(t *testing.T) {
	f := newFixture(t, 10, 3)
	o := f.newOrder(t, "amuro@example.com")

	require.NoError(t, f.svc.PlaceOrderSaga(context.Background(), o))

	stored, err := f.orders.FindByID(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, stored.Status())
	assert.NotEmpty(t, stored.PaymentRef())
	assert.Equal(t, 4, f.usedCount(t))
	assert.Equal(t, []string{events.OrderPlaced}, f.publisher.types())
}

func TestPlaceOrderSaga_PaymentDeclinedRollsBack(t *testing.T) {
	f := newFixture(t, 10, 3)
	o := f.newOrder(t, "char+decline@example.com")

	err := f.svc.PlaceOrderSaga(context.Background(), o)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrPaymentDeclined)

	stored, err := f.orders.FindByID(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusFailed, stored.Status())
	assert.Equal(t, 3, f.usedCount(t), "redemption is reverted")
	assert.Equal(t, []string{events.OrderFailed}, f.publisher.types())
}

func TestPlaceOrderSaga_LostRaceForLastUse(t *testing.T) {
	f := newFixture(t, 1, 0)
	first := f.newOrder(t, "a@example.com")
	second := f.newOrder(t, "b@example.com")

	require.NoError(t, f.svc.PlaceOrderSaga(context.Background(), first))

	err := f.svc.PlaceOrderSaga(context.Background(), second)
	require.Error(t, err)
	assert.ErrorIs(t, err, discount.ErrUsageLimitReached)
	ve, ok := discount.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, discount.ReasonUsageLimitReached, ve.Reason)
	assert.Equal(t, 1, f.usedCount(t))
}

func TestPlaceOrderSaga_PublishFailureFailsOrder(t *testing.T) {
	f := newFixture(t, 10, 0)
	f.publisher.err = errors.New("broker down")
	o := f.newOrder(t, "amuro@example.com")

	require.Error(t, f.svc.PlaceOrderSaga(context.Background(), o))

	stored, err := f.orders.FindByID(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusFailed, stored.Status())
	assert.Equal(t, 0, f.usedCount(t))
}

func TestPlaceOrderSaga_NoDiscount(t *testing.T) {
	f := newFixture(t, 10, 0)
	o, err := order.NewOrder("sess-0001", "a@example.com",
		[]cart.LineItem{{ProductID: "2", Name: "Kit", UnitPrice: decimal.NewFromInt(5), Quantity: 2}},
		order.Pricing{Subtotal: decimal.NewFromInt(10), Total: decimal.NewFromInt(10)},
		"USD",
		order.Address{FullName: "A", Street: "B", City: "C", Country: "D"},
		order.PaymentMethod{Type: order.PaymentPayPal},
	)
	require.NoError(t, err)

	require.NoError(t, f.svc.PlaceOrderSaga(context.Background(), o))
	assert.Equal(t, 0, f.usedCount(t))
}

// flakyOrders fails the first update that would move an order to processing.
type flakyOrders struct {
	*repository.MemoryOrderRepository
	failed bool
}

func (r *flakyOrders) Update(ctx context.Context, o *order.Order) error {
	if o.Status() == order.StatusProcessing && !r.failed {
		r.failed = true
		return errors.New("connection reset")
	}
	return r.MemoryOrderRepository.Update(ctx, o)
}

func TestPlaceOrderSaga_MarkProcessingFailureStillFailsOrder(t *testing.T) {
	f := newFixture(t, 10, 3)
	orders := &flakyOrders{MemoryOrderRepository: f.orders}
	logger := zap.NewNop()
	svc := NewCheckoutSagaService(orders, f.discounts, adapter.NewSimulatedGateway(0, logger), f.publisher, logger)
	o := f.newOrder(t, "amuro@example.com")

	err := svc.PlaceOrderSaga(context.Background(), o)
	require.Error(t, err)
	assert.True(t, orders.failed)

	stored, err := f.orders.FindByID(context.Background(), o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusFailed, stored.Status())
	assert.Equal(t, int64(2), stored.Version())
	assert.Equal(t, 3, f.usedCount(t), "redemption is reverted")
	assert.Equal(t, []string{events.OrderFailed}, f.publisher.types())
}
