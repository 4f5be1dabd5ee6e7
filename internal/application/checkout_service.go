package application

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/domain/session"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
	"github.com/gunpla-hub/service-storefront/internal/platform/metrics"
)

// CheckoutRequest carries what the checkout form collects.
type CheckoutRequest struct {
	CustomerEmail   string              `json:"customer_email" binding:"required,email"`
	ShippingAddress order.Address       `json:"shipping_address" binding:"required"`
	PaymentMethod   order.PaymentMethod `json:"payment_method" binding:"required"`
}

// OrderPlacer runs the checkout saga for a pending order.
type OrderPlacer interface {
	PlaceOrderSaga(ctx context.Context, o *order.Order) error
}

// CheckoutService converts a session's cart into an order.
type CheckoutService struct {
	store     session.Store
	discounts *DiscountService
	placer    OrderPlacer
	currency  string
	now       Clock
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	store session.Store,
	discounts *DiscountService,
	placer OrderPlacer,
	currency string,
	now Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		store:     store,
		discounts: discounts,
		placer:    placer,
		currency:  currency,
		now:       now,
		metrics:   m,
		logger:    logger,
	}
}

// PlaceOrder re-prices the cart, runs the checkout saga and, on success,
// empties the cart and consumes its discount slot. An applied code that is
// no longer eligible aborts checkout with its rejection and the cart is left
// untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sid string, req CheckoutRequest) (*OrderDTO, error) {
	if err := session.ValidateID(sid); err != nil {
		return nil, err
	}
	if len(req.PaymentMethod.Last4) > 4 {
		return nil, shared.NewValidationError("payment_method.last4 must be at most 4 digits")
	}

	st, err := s.store.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if st.Cart.IsEmpty() {
		return nil, shared.NewValidationError("cart is empty")
	}

	all, err := s.discounts.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	q, err := priceCart(&st.Cart, all, s.now())
	if err != nil {
		s.metrics.ObserveOrder("rejected", 0)
		return nil, err
	}

	// Orders are charged in whole cents; the engine's exact amount is
	// rounded once here.
	pricing := order.Pricing{Subtotal: q.Subtotal.Round(2), DiscountAmount: decimal.Zero}
	if q.Applied != nil {
		id := q.Applied.Discount.ID()
		pricing.DiscountID = &id
		pricing.DiscountCode = q.Applied.Discount.Code()
		pricing.DiscountAmount = q.Applied.Amount.Round(2)
	}
	pricing.Total = decimal.Max(pricing.Subtotal.Sub(pricing.DiscountAmount), decimal.Zero)

	o, err := order.NewOrder(sid, strings.TrimSpace(req.CustomerEmail), st.Cart.Snapshot(), pricing, s.currency, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	s.logger.Info("placing order",
		zap.String("order_id", o.ID().String()),
		zap.String("session_id", sid),
		zap.String("total", pricing.Total.StringFixed(2)),
		zap.String("discount_code", pricing.DiscountCode),
	)

	if err := s.placer.PlaceOrderSaga(ctx, o); err != nil {
		s.metrics.ObserveOrder("failed", 0)
		s.logger.Error("checkout failed", zap.String("order_id", o.ID().String()), zap.Error(err))
		if errors.Is(err, adapter.ErrPaymentDeclined) {
			return nil, shared.NewValidationError("payment was declined")
		}
		return nil, err
	}

	st.Cart.Slot.Consume()
	st.Cart.Clear()
	if err := s.store.Save(ctx, sid, st); err != nil {
		// The order stands; the shopper only sees a stale cart.
		s.logger.Error("failed to clear cart after checkout",
			zap.String("session_id", sid),
			zap.String("order_id", o.ID().String()),
			zap.Error(err),
		)
	}

	total, _ := pricing.Total.Float64()
	s.metrics.ObserveOrder("placed", total)

	dto := toOrderDTO(o)
	return &dto, nil
}
