package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// OrderModel is the GORM persistence model for the orders table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SessionID       string          `gorm:"type:varchar(64);not null;index"`
	CustomerEmail   string          `gorm:"type:varchar(255);not null"`
	Items           datatypes.JSON  `gorm:"type:jsonb;not null"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountID      *uuid.UUID      `gorm:"type:uuid"`
	DiscountCode    string          `gorm:"type:varchar(50)"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	ShippingAddress datatypes.JSON  `gorm:"type:jsonb;not null"`
	PaymentMethod   datatypes.JSON  `gorm:"type:jsonb;not null"`
	PaymentRef      string          `gorm:"type:varchar(255)"`
	TrackingNumber  string          `gorm:"type:varchar(100)"`
	FailureReason   string          `gorm:"type:text"`
	Version         int64           `gorm:"not null;default:1"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null"`
	UpdatedAt       time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName specifies the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderRepositoryImpl is the GORM-based implementation of order.Repository.
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository creates a new GORM-based order repository.
func NewOrderRepository(db *gorm.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

// FindByID retrieves an order by its unique ID.
func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Order", id.String())
		}
		return nil, err
	}
	return toOrderDomain(&model)
}

// Save persists a new order aggregate.
func (r *OrderRepositoryImpl) Save(ctx context.Context, o *order.Order) error {
	model, err := toOrderModel(o)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing order with optimistic locking.
func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	model, err := toOrderModel(o)
	if err != nil {
		return err
	}
	previousVersion := o.Version() - 1

	result := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ? AND version = ?", model.ID, previousVersion).
		Updates(model)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return shared.NewConflictError("order was modified by another transaction")
	}

	return nil
}

// ListAll retrieves all orders with pagination (admin).
func (r *OrderRepositoryImpl) ListAll(ctx context.Context, page, limit int) ([]*order.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []OrderModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(models))
	for i := range models {
		o, err := toOrderDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

// GetRevenueStats returns order statistics (admin). Revenue counts every
// order whose payment was authorized.
func (r *OrderRepositoryImpl) GetRevenueStats(ctx context.Context) (decimal.Decimal, map[string]int64, error) {
	var revenue decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("status IN ?", []string{
			string(order.StatusProcessing),
			string(order.StatusShipped),
			string(order.StatusDelivered),
		}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error; err != nil {
		return decimal.Zero, nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&OrderModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return decimal.Zero, nil, err
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return revenue, counts, nil
}

// toOrderDomain maps an OrderModel to the domain Order aggregate.
func toOrderDomain(m *OrderModel) (*order.Order, error) {
	var items []cart.LineItem
	if err := json.Unmarshal(m.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	var address order.Address
	if err := json.Unmarshal(m.ShippingAddress, &address); err != nil {
		return nil, fmt.Errorf("failed to decode shipping address: %w", err)
	}
	var method order.PaymentMethod
	if err := json.Unmarshal(m.PaymentMethod, &method); err != nil {
		return nil, fmt.Errorf("failed to decode payment method: %w", err)
	}

	return order.Reconstitute(order.Snapshot{
		ID:            m.ID,
		SessionID:     m.SessionID,
		CustomerEmail: m.CustomerEmail,
		Items:         items,
		Pricing: order.Pricing{
			Subtotal:       m.Subtotal,
			DiscountID:     m.DiscountID,
			DiscountCode:   m.DiscountCode,
			DiscountAmount: m.DiscountAmount,
			Total:          m.Total,
		},
		Currency:        m.Currency,
		Status:          order.Status(m.Status),
		ShippingAddress: address,
		PaymentMethod:   method,
		PaymentRef:      m.PaymentRef,
		TrackingNumber:  m.TrackingNumber,
		FailureReason:   m.FailureReason,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}), nil
}

// toOrderModel maps a domain Order aggregate to an OrderModel for persistence.
func toOrderModel(o *order.Order) (*OrderModel, error) {
	s := o.Snapshot()
	items, err := json.Marshal(s.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}
	address, err := json.Marshal(s.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipping address: %w", err)
	}
	method, err := json.Marshal(s.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment method: %w", err)
	}

	return &OrderModel{
		ID:              s.ID,
		SessionID:       s.SessionID,
		CustomerEmail:   s.CustomerEmail,
		Items:           datatypes.JSON(items),
		Subtotal:        s.Pricing.Subtotal,
		DiscountID:      s.Pricing.DiscountID,
		DiscountCode:    s.Pricing.DiscountCode,
		DiscountAmount:  s.Pricing.DiscountAmount,
		Total:           s.Pricing.Total,
		Currency:        s.Currency,
		Status:          string(s.Status),
		ShippingAddress: datatypes.JSON(address),
		PaymentMethod:   datatypes.JSON(method),
		PaymentRef:      s.PaymentRef,
		TrackingNumber:  s.TrackingNumber,
		FailureReason:   s.FailureReason,
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}
