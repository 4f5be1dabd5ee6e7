package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// Status represents the fulfillment state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusFailed     Status = "failed"
)

// Address is a shipping destination.
type Address struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// PaymentMethodType is how the shopper pays.
type PaymentMethodType string

const (
	PaymentCard   PaymentMethodType = "card"
	PaymentPayPal PaymentMethodType = "paypal"
)

// PaymentMethod describes the instrument without sensitive data.
type PaymentMethod struct {
	Type  PaymentMethodType `json:"type"`
	Last4 string            `json:"last4,omitempty"`
	Brand string            `json:"brand,omitempty"`
}

// Pricing is the priced cart at checkout time.
type Pricing struct {
	Subtotal       decimal.Decimal
	DiscountID     *uuid.UUID
	DiscountCode   string
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// Order is the aggregate root for a placed storefront order.
type Order struct {
	id              uuid.UUID
	sessionID       string
	customerEmail   string
	items           []cart.LineItem
	pricing         Pricing
	currency        string
	status          Status
	shippingAddress Address
	paymentMethod   PaymentMethod
	paymentRef      string
	trackingNumber  string
	failureReason   string
	version         int64
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder creates a pending order from a priced cart snapshot.
func NewOrder(sessionID, customerEmail string, items []cart.LineItem, pricing Pricing, currency string, address Address, method PaymentMethod) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewValidationError("order must contain at least one item")
	}
	if address.FullName == "" || address.Street == "" || address.City == "" || address.Country == "" {
		return nil, shared.NewValidationError("shipping address is incomplete")
	}
	if method.Type != PaymentCard && method.Type != PaymentPayPal {
		return nil, shared.NewValidationError(fmt.Sprintf("unsupported payment method: %s", method.Type))
	}
	if pricing.Total.IsNegative() || pricing.Total.GreaterThan(pricing.Subtotal) {
		return nil, shared.NewValidationError("order total must be within [0, subtotal]")
	}

	now := time.Now().UTC()
	return &Order{
		id:              uuid.New(),
		sessionID:       sessionID,
		customerEmail:   customerEmail,
		items:           items,
		pricing:         pricing,
		currency:        currency,
		status:          StatusPending,
		shippingAddress: address,
		paymentMethod:   method,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// --- Getters ---

func (o *Order) ID() uuid.UUID                 { return o.id }
func (o *Order) SessionID() string             { return o.sessionID }
func (o *Order) CustomerEmail() string         { return o.customerEmail }
func (o *Order) Items() []cart.LineItem        { return o.items }
func (o *Order) Pricing() Pricing              { return o.pricing }
func (o *Order) Currency() string              { return o.currency }
func (o *Order) Status() Status                { return o.status }
func (o *Order) ShippingAddress() Address      { return o.shippingAddress }
func (o *Order) PaymentMethod() PaymentMethod  { return o.paymentMethod }
func (o *Order) PaymentRef() string            { return o.paymentRef }
func (o *Order) TrackingNumber() string        { return o.trackingNumber }
func (o *Order) FailureReason() string         { return o.failureReason }
func (o *Order) Version() int64                { return o.version }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) UpdatedAt() time.Time          { return o.updatedAt }

// --- State transitions ---

// MarkProcessing transitions from pending to processing once payment is authorized.
func (o *Order) MarkProcessing(paymentRef string) error {
	if o.status != StatusPending {
		return shared.NewInvalidStateError(string(o.status), string(StatusProcessing))
	}
	o.status = StatusProcessing
	o.paymentRef = paymentRef
	o.updatedAt = time.Now().UTC()
	return nil
}

// Ship transitions from processing to shipped.
func (o *Order) Ship(trackingNumber string) error {
	if o.status != StatusProcessing {
		return shared.NewInvalidStateError(string(o.status), string(StatusShipped))
	}
	o.status = StatusShipped
	o.trackingNumber = trackingNumber
	o.updatedAt = time.Now().UTC()
	return nil
}

// Deliver transitions from shipped to delivered.
func (o *Order) Deliver() error {
	if o.status != StatusShipped {
		return shared.NewInvalidStateError(string(o.status), string(StatusDelivered))
	}
	o.status = StatusDelivered
	o.updatedAt = time.Now().UTC()
	return nil
}

// Fail transitions a pending or processing order to failed.
func (o *Order) Fail(reason string) error {
	if o.status != StatusPending && o.status != StatusProcessing {
		return shared.NewInvalidStateError(string(o.status), string(StatusFailed))
	}
	o.status = StatusFailed
	o.failureReason = reason
	o.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (o *Order) IncrementVersion() {
	o.version++
	o.updatedAt = time.Now().UTC()
}

// Snapshot is the flat persisted form of an Order.
type Snapshot struct {
	ID              uuid.UUID
	SessionID       string
	CustomerEmail   string
	Items           []cart.LineItem
	Pricing         Pricing
	Currency        string
	Status          Status
	ShippingAddress Address
	PaymentMethod   PaymentMethod
	PaymentRef      string
	TrackingNumber  string
	FailureReason   string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Reconstitute rebuilds an Order from persisted data.
func Reconstitute(s Snapshot) *Order {
	return &Order{
		id:              s.ID,
		sessionID:       s.SessionID,
		customerEmail:   s.CustomerEmail,
		items:           s.Items,
		pricing:         s.Pricing,
		currency:        s.Currency,
		status:          s.Status,
		shippingAddress: s.ShippingAddress,
		paymentMethod:   s.PaymentMethod,
		paymentRef:      s.PaymentRef,
		trackingNumber:  s.TrackingNumber,
		failureReason:   s.FailureReason,
		version:         s.Version,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

// Snapshot flattens the order for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		SessionID:       o.sessionID,
		CustomerEmail:   o.customerEmail,
		Items:           o.items,
		Pricing:         o.pricing,
		Currency:        o.currency,
		Status:          o.status,
		ShippingAddress: o.shippingAddress,
		PaymentMethod:   o.paymentMethod,
		PaymentRef:      o.paymentRef,
		TrackingNumber:  o.trackingNumber,
		FailureReason:   o.failureReason,
		Version:         o.version,
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.updatedAt,
	}
}
