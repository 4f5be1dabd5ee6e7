package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Topics.
const (
	TopicOrderEvents       = "order.events"
	TopicFulfillmentEvents = "fulfillment.events"
)

// Event types.
const (
	OrderPlaced                   = "order.placed"
	OrderFailed                   = "order.failed"
	FulfillmentShipmentDispatched = "fulfillment.shipment_dispatched"
	FulfillmentShipmentDelivered  = "fulfillment.shipment_delivered"
)

// Source identifies this service on events it produces.
const Source = "service-storefront"

// OrderLine is one product line in an order event.
type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderPlacedEvent is published once payment has been authorized.
type OrderPlacedEvent struct {
	OrderID        uuid.UUID       `json:"order_id"`
	SessionID      string          `json:"session_id"`
	CustomerEmail  string          `json:"customer_email"`
	Items          []OrderLine     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountCode   string          `json:"discount_code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
	PaymentRef     string          `json:"payment_ref"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// OrderFailedEvent is published when the checkout saga aborts.
type OrderFailedEvent struct {
	OrderID    uuid.UUID `json:"order_id"`
	SessionID  string    `json:"session_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ShipmentDispatchedEvent is consumed from the fulfillment service.
type ShipmentDispatchedEvent struct {
	OrderID        uuid.UUID `json:"order_id"`
	TrackingNumber string    `json:"tracking_number"`
	Carrier        string    `json:"carrier,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ShipmentDeliveredEvent is consumed from the fulfillment service.
type ShipmentDeliveredEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	DeliveredAt time.Time `json:"delivered_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}
