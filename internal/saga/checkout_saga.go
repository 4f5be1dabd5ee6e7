package saga

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/proto/events"
)

// CheckoutSagaService turns a priced, pending order into a placed one.
type CheckoutSagaService struct {
	orders    order.Repository
	discounts discount.Repository
	gateway   adapter.PaymentGateway
	publisher kafka.Publisher
	logger    *zap.Logger
}

// NewCheckoutSagaService creates a new CheckoutSagaService.
func NewCheckoutSagaService(
	orders order.Repository,
	discounts discount.Repository,
	gateway adapter.PaymentGateway,
	publisher kafka.Publisher,
	logger *zap.Logger,
) *CheckoutSagaService {
	return &CheckoutSagaService{
		orders:    orders,
		discounts: discounts,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrderSaga persists o, redeems its discount, authorizes payment, marks
// the order processing and announces it. Any failure rolls back the earlier
// steps and leaves the order persisted as failed.
func (s *CheckoutSagaService) PlaceOrderSaga(ctx context.Context, o *order.Order) error {
	pricing := o.Pricing()
	var (
		redeemed   bool
		paymentRef string
	)

	sg := New("place_order", s.logger.With(zap.String("order_id", o.ID().String())))

	sg.AddStep(Step{
		Name: "save_order",
		Execute: func(ctx context.Context) error {
			return s.orders.Save(ctx, o)
		},
		Compensate: func(ctx context.Context) error {
			if err := o.Fail("checkout aborted"); err != nil {
				return err
			}
			o.IncrementVersion()
			return s.orders.Update(ctx, o)
		},
	})

	sg.AddStep(Step{
		Name: "redeem_discount",
		Execute: func(ctx context.Context) error {
			if pricing.DiscountID == nil {
				return nil
			}
			if err := s.discounts.IncrementUsage(ctx, *pricing.DiscountID); err != nil {
				return err
			}
			redeemed = true
			return nil
		},
		Compensate: func(ctx context.Context) error {
			if !redeemed {
				return nil
			}
			return s.discounts.DecrementUsage(ctx, *pricing.DiscountID)
		},
	})

	sg.AddStep(Step{
		Name: "authorize_payment",
		Execute: func(ctx context.Context) error {
			ref, err := s.gateway.Authorize(ctx, pricing.Total, o.Currency(), o.CustomerEmail(), string(o.PaymentMethod().Type))
			if err != nil {
				return err
			}
			paymentRef = ref
			return nil
		},
		Compensate: func(ctx context.Context) error {
			if paymentRef == "" {
				return nil
			}
			return s.gateway.Void(ctx, paymentRef)
		},
	})

	sg.AddStep(Step{
		Name: "mark_processing",
		Execute: func(ctx context.Context) error {
			before := o.Snapshot()
			if err := o.MarkProcessing(paymentRef); err != nil {
				return err
			}
			o.IncrementVersion()
			if err := s.orders.Update(ctx, o); err != nil {
				// The row is still pending at the old version; save_order's
				// compensation must start from that state.
				*o = *order.Reconstitute(before)
				return err
			}
			return nil
		},
	})

	sg.AddStep(Step{
		Name: "publish_order_placed",
		Execute: func(ctx context.Context) error {
			return s.publish(ctx, events.OrderPlaced, toPlacedEvent(o))
		},
	})

	if err := sg.Execute(ctx); err != nil {
		s.publishFailedEvent(context.WithoutCancel(ctx), o, err)
		return err
	}
	return nil
}

func (s *CheckoutSagaService) publish(ctx context.Context, eventType string, data interface{}) error {
	ce, err := kafka.NewCloudEvent(events.Source, eventType, data)
	if err != nil {
		return fmt.Errorf("failed to create cloud event: %w", err)
	}
	return s.publisher.PublishEvent(ctx, events.TopicOrderEvents, ce)
}

// publishFailedEvent is best effort; the order row already records the failure.
func (s *CheckoutSagaService) publishFailedEvent(ctx context.Context, o *order.Order, cause error) {
	event := events.OrderFailedEvent{
		OrderID:    o.ID(),
		SessionID:  o.SessionID(),
		Reason:     cause.Error(),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publish(ctx, events.OrderFailed, event); err != nil {
		s.logger.Error("failed to publish order failed event",
			zap.String("order_id", o.ID().String()),
			zap.Error(err),
		)
	}
}

func toPlacedEvent(o *order.Order) events.OrderPlacedEvent {
	p := o.Pricing()
	lines := make([]events.OrderLine, len(o.Items()))
	for i, li := range o.Items() {
		lines[i] = events.OrderLine{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}
	return events.OrderPlacedEvent{
		OrderID:        o.ID(),
		SessionID:      o.SessionID(),
		CustomerEmail:  o.CustomerEmail(),
		Items:          lines,
		Subtotal:       p.Subtotal,
		DiscountCode:   p.DiscountCode,
		DiscountAmount: p.DiscountAmount,
		Total:          p.Total,
		Currency:       o.Currency(),
		PaymentRef:     o.PaymentRef(),
		OccurredAt:     time.Now().UTC(),
	}
}
