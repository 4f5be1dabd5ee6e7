package application

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

func TestStorefront_FreshSession(t *testing.T) {
	a := newTestApp(t)

	dto, err := a.storefront.GetState(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, dto.Cart.Items)
	assert.True(t, dto.Cart.Total.IsZero())
	assert.Equal(t, string(cart.SlotNone), dto.Cart.DiscountState)
	assert.Equal(t, []string{}, dto.Wishlist)
	assert.Equal(t, catalog.DefaultFilters().SortBy, dto.Filters.SortBy)
}

func TestStorefront_RejectsBadSessionID(t *testing.T) {
	a := newTestApp(t)
	_, err := a.storefront.GetState(context.Background(), "short")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestStorefront_CartOperations(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "1"})
	require.NoError(t, err)
	dto, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, dto.Cart.ItemCount)
	assert.True(t, dto.Cart.Subtotal.Equal(dec("39.98")))

	qty := 3
	dto, err = a.storefront.UpdateQuantity(ctx, testSession, "1", UpdateQuantityRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, dto.Cart.Total.Equal(dec("59.97")))

	_, err = a.storefront.RemoveFromCart(ctx, testSession, "2")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "404"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "99"})
	assert.ErrorIs(t, err, shared.ErrValidation, "out of stock")

	dto, err = a.storefront.ClearCart(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, dto.Cart.Items)
}

func TestStorefront_ApplyDiscount(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "3"})
	require.NoError(t, err)

	dto, err := a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "gundam20"})
	require.NoError(t, err)
	require.NotNil(t, dto.Cart.Discount)
	assert.Equal(t, "GUNDAM20", dto.Cart.Discount.Code)
	assert.Equal(t, string(cart.SlotApplied), dto.Cart.DiscountState)
	assert.True(t, dto.Cart.DiscountAmount.Equal(dec("39.998")))
	assert.True(t, dto.Cart.Total.Equal(dec("159.992")))

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.DiscountApplications.WithLabelValues("applied")))

	// Applying never redeems.
	d, err := a.discounts.FindByCode(ctx, "GUNDAM20")
	require.NoError(t, err)
	assert.Equal(t, 45, d.UsedCount())
}

func TestStorefront_ApplyDiscountToEmptyCart(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "GUNDAM20"})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, 0.0, testutil.ToFloat64(a.metrics.DiscountApplications.WithLabelValues("applied")))

	dto, err := a.storefront.GetState(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, dto.Cart.Discount)
	assert.Equal(t, string(cart.SlotNone), dto.Cart.DiscountState)
}

func TestStorefront_RejectedCodeKeepsSlot(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "3"})
	require.NoError(t, err)
	_, err = a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "GUNDAM20"})
	require.NoError(t, err)

	_, err = a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "NOPE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, discount.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.DiscountApplications.WithLabelValues("not_found")))

	dto, err := a.storefront.GetState(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, dto.Cart.Discount)
	assert.Equal(t, "GUNDAM20", dto.Cart.Discount.Code)
}

func TestStorefront_MinimumOrderRejection(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "4"})
	require.NoError(t, err)

	_, err = a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "WELCOME15"})
	ve, ok := discount.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, discount.ReasonMinimumOrderNotMet, ve.Reason)
	assert.True(t, ve.Shortfall.Equal(dec("14.01")))
}

func TestStorefront_SlotDroppedWhenCartFallsBelowMinimum(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "4"})
	require.NoError(t, err)
	_, err = a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "2"})
	require.NoError(t, err)
	_, err = a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "WELCOME15"})
	require.NoError(t, err)

	dto, err := a.storefront.RemoveFromCart(ctx, testSession, "2")
	require.NoError(t, err)
	assert.Nil(t, dto.Cart.Discount)
	assert.Equal(t, string(cart.SlotNone), dto.Cart.DiscountState)
	assert.True(t, dto.Cart.Total.Equal(dec("15.99")))
	assert.Contains(t, dto.Notice, "WELCOME15")

	// The removal is persisted, so the notice is shown once.
	dto, err = a.storefront.GetState(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, dto.Notice)
}

func TestStorefront_RemoveDiscount(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.storefront.AddToCart(ctx, testSession, AddToCartRequest{ProductID: "3"})
	require.NoError(t, err)
	_, err = a.storefront.ApplyDiscount(ctx, testSession, ApplyDiscountRequest{Code: "GUNDAM20"})
	require.NoError(t, err)

	dto, err := a.storefront.RemoveDiscount(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, dto.Cart.Discount)
	assert.True(t, dto.Cart.Total.Equal(dec("199.99")))
}

func TestStorefront_Shortlists(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4"} {
		_, err := a.storefront.ToggleCompare(ctx, testSession, id)
		require.NoError(t, err)
	}
	dto, err := a.storefront.ToggleWishlist(ctx, testSession, "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4"}, dto.Compare)
	assert.Equal(t, []string{"5"}, dto.Wishlist)

	dto, err = a.storefront.ToggleWishlist(ctx, testSession, "5")
	require.NoError(t, err)
	assert.Empty(t, dto.Wishlist)

	_, err = a.storefront.ToggleWishlist(ctx, testSession, "404")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStorefront_SaveFilters(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	f := catalog.DefaultFilters()
	f.Category = "tools"
	f.SortBy = catalog.SortByPrice
	_, err := a.storefront.SaveFilters(ctx, testSession, f)
	require.NoError(t, err)

	dto, err := a.storefront.GetState(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, "tools", dto.Filters.Category)
	assert.Equal(t, catalog.SortByPrice, dto.Filters.SortBy)
}
