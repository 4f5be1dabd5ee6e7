package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

var testAddress = Address{FullName: "Amuro Ray", Street: "1 White Base", City: "Side 7", ZipCode: "0079", Country: "EF"}

func testItems() []cart.LineItem {
	return []cart.LineItem{{ProductID: "1", Name: "RX-78-2", Category: "gundam", UnitPrice: decimal.RequireFromString("19.99"), Quantity: 2}}
}

func testPricing() Pricing {
	return Pricing{
		Subtotal:       decimal.RequireFromString("39.98"),
		DiscountAmount: decimal.Zero,
		Total:          decimal.RequireFromString("39.98"),
	}
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("sess-1", "amuro@example.com", testItems(), testPricing(), "USD", testAddress, PaymentMethod{Type: PaymentCard, Last4: "4242", Brand: "visa"})
	require.NoError(t, err)
	return o
}

func TestNewOrder_Validation(t *testing.T) {
	card := PaymentMethod{Type: PaymentCard}

	_, err := NewOrder("s", "e", nil, testPricing(), "USD", testAddress, card)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewOrder("s", "e", testItems(), testPricing(), "USD", Address{}, card)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewOrder("s", "e", testItems(), testPricing(), "USD", testAddress, PaymentMethod{Type: "crypto"})
	assert.ErrorIs(t, err, shared.ErrValidation)

	bad := testPricing()
	bad.Total = bad.Subtotal.Add(decimal.NewFromInt(1))
	_, err = NewOrder("s", "e", testItems(), bad, "USD", testAddress, card)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newTestOrder(t)
	assert.Equal(t, StatusPending, o.Status())
	assert.Equal(t, int64(1), o.Version())

	assert.ErrorIs(t, o.Ship("TRK"), shared.ErrInvalidState)

	require.NoError(t, o.MarkProcessing("pay_123"))
	require.NoError(t, o.Ship("GV123456789"))
	require.NoError(t, o.Deliver())
	assert.Equal(t, StatusDelivered, o.Status())
	assert.Equal(t, "GV123456789", o.TrackingNumber())

	assert.ErrorIs(t, o.Fail("late"), shared.ErrInvalidState)
}

func TestOrder_Fail(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Fail("payment declined"))
	assert.Equal(t, StatusFailed, o.Status())
	assert.Equal(t, "payment declined", o.FailureReason())
	assert.ErrorIs(t, o.MarkProcessing("x"), shared.ErrInvalidState)
}

func TestOrder_SnapshotRoundTrip(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.MarkProcessing("pay_1"))
	o.IncrementVersion()

	back := Reconstitute(o.Snapshot())
	assert.Equal(t, o.ID(), back.ID())
	assert.Equal(t, o.Status(), back.Status())
	assert.Equal(t, o.Version(), back.Version())
	assert.Equal(t, "pay_1", back.PaymentRef())
}
