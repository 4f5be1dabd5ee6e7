package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/platform/metrics"
	"github.com/gunpla-hub/service-storefront/internal/repository"
	"github.com/gunpla-hub/service-storefront/internal/saga"
)

const testSession = "sess-abcdef01"

var midYear = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type nopPublisher struct{}

func (nopPublisher) PublishEvent(context.Context, string, kafka.CloudEvent) error { return nil }

type testApp struct {
	store      *repository.MemoryStateStore
	products   *repository.MemoryProductRepository
	discounts  *repository.MemoryDiscountRepository
	orders     *repository.MemoryOrderRepository
	metrics    *metrics.Metrics
	discount   *DiscountService
	storefront *StorefrontService
	checkout   *CheckoutService
	order      *OrderService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	logger := zap.NewNop()
	now := fixedClock(midYear)

	products := catalog.SeedProducts()
	products = append(products, catalog.Product{
		ID:       "99",
		Name:     "Sold Out Zaku",
		Category: catalog.CategoryGundam,
		Price:    decimal.NewFromInt(30),
		InStock:  false,
	})

	a := &testApp{
		store:     repository.NewMemoryStateStore(),
		products:  repository.NewMemoryProductRepository(products),
		discounts: repository.NewMemoryDiscountRepository(),
		orders:    repository.NewMemoryOrderRepository(),
		metrics:   metrics.New("test"),
	}
	a.discount = NewDiscountService(a.discounts, now, logger)
	require.NoError(t, a.discount.SeedDiscounts(context.Background(), discount.SeedValidFrom, discount.SeedValidTo))

	a.storefront = NewStorefrontService(a.store, a.products, a.discount, now, a.metrics, logger)
	placer := saga.NewCheckoutSagaService(a.orders, a.discounts, adapter.NewSimulatedGateway(0, logger), nopPublisher{}, logger)
	a.checkout = NewCheckoutService(a.store, a.discount, placer, "USD", now, a.metrics, logger)
	a.order = NewOrderService(a.orders, logger)
	return a
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
