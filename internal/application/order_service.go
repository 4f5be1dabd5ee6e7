package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
	"github.com/gunpla-hub/service-storefront/internal/proto/events"
)

// OrderDTO is the API response DTO for order data.
type OrderDTO struct {
	ID              uuid.UUID           `json:"id"`
	SessionID       string              `json:"session_id"`
	CustomerEmail   string              `json:"customer_email"`
	Items           []cart.LineItem     `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	DiscountCode    string              `json:"discount_code,omitempty"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	Total           decimal.Decimal     `json:"total"`
	Currency        string              `json:"currency"`
	Status          string              `json:"status"`
	ShippingAddress order.Address       `json:"shipping_address"`
	PaymentMethod   order.PaymentMethod `json:"payment_method"`
	PaymentRef      string              `json:"payment_ref,omitempty"`
	TrackingNumber  string              `json:"tracking_number,omitempty"`
	FailureReason   string              `json:"failure_reason,omitempty"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderStatsDTO holds order statistics for the admin dashboard.
type OrderStatsDTO struct {
	TotalRevenue decimal.Decimal  `json:"total_revenue"`
	TotalOrders  int64            `json:"total_orders"`
	ByStatus     map[string]int64 `json:"by_status"`
}

// OrderService serves placed orders and applies fulfillment updates.
type OrderService struct {
	repo   order.Repository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo order.Repository, logger *zap.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// GetOrder retrieves an order by its ID.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

// HandleShipmentDispatched moves a processing order to shipped.
func (s *OrderService) HandleShipmentDispatched(ctx context.Context, event events.ShipmentDispatchedEvent) error {
	s.logger.Info("handling shipment dispatched event",
		zap.String("order_id", event.OrderID.String()),
		zap.String("tracking_number", event.TrackingNumber),
	)
	return s.advance(ctx, event.OrderID, func(o *order.Order) error {
		return o.Ship(event.TrackingNumber)
	})
}

// HandleShipmentDelivered moves a shipped order to delivered.
func (s *OrderService) HandleShipmentDelivered(ctx context.Context, event events.ShipmentDeliveredEvent) error {
	s.logger.Info("handling shipment delivered event",
		zap.String("order_id", event.OrderID.String()),
	)
	return s.advance(ctx, event.OrderID, func(o *order.Order) error {
		return o.Deliver()
	})
}

// advance applies a transition and persists it. Unknown orders and
// out-of-order transitions are logged and skipped so redelivered events are
// harmless.
func (s *OrderService) advance(ctx context.Context, id uuid.UUID, transition func(*order.Order) error) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if shared.IsNotFound(err) {
			s.logger.Warn("no order found for fulfillment event, skipping",
				zap.String("order_id", id.String()),
			)
			return nil
		}
		return err
	}

	if err := transition(o); err != nil {
		if errors.Is(err, shared.ErrInvalidState) {
			s.logger.Info("order not in expected state, skipping",
				zap.String("order_id", id.String()),
				zap.String("status", string(o.Status())),
			)
			return nil
		}
		return err
	}

	o.IncrementVersion()
	return s.repo.Update(ctx, o)
}

// --- Admin methods ---

// ListAllOrders returns a paginated list of all orders (admin).
func (s *OrderService) ListAllOrders(ctx context.Context, page, limit int) ([]OrderDTO, int64, error) {
	orders, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toOrderDTO(o)
	}
	return dtos, total, nil
}

// GetOrderStats returns aggregate order statistics (admin).
func (s *OrderService) GetOrderStats(ctx context.Context) (*OrderStatsDTO, error) {
	revenue, counts, err := s.repo.GetRevenueStats(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &OrderStatsDTO{
		TotalRevenue: revenue,
		TotalOrders:  total,
		ByStatus:     counts,
	}, nil
}

// toOrderDTO maps a domain Order to an OrderDTO.
func toOrderDTO(o *order.Order) OrderDTO {
	p := o.Pricing()
	return OrderDTO{
		ID:              o.ID(),
		SessionID:       o.SessionID(),
		CustomerEmail:   o.CustomerEmail(),
		Items:           o.Items(),
		Subtotal:        p.Subtotal,
		DiscountCode:    p.DiscountCode,
		DiscountAmount:  p.DiscountAmount,
		Total:           p.Total,
		Currency:        o.Currency(),
		Status:          string(o.Status()),
		ShippingAddress: o.ShippingAddress(),
		PaymentMethod:   o.PaymentMethod(),
		PaymentRef:      o.PaymentRef(),
		TrackingNumber:  o.TrackingNumber(),
		FailureReason:   o.FailureReason(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}
