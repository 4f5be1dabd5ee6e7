package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
)

func product(id, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Kit " + id, Category: catalog.CategoryGundam, Price: decimal.RequireFromString(price)}
}

func TestCart_AddAndSubtotal(t *testing.T) {
	var c Cart
	c.Add(product("1", "19.99"))
	c.Add(product("1", "19.99"))
	c.Add(product("2", "47.99"))

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.ItemCount())
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("87.97")))
}

func TestCart_UpdateQuantity(t *testing.T) {
	var c Cart
	c.Add(product("1", "10"))
	c.Add(product("2", "5"))

	assert.True(t, c.UpdateQuantity("1", 4))
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(45)))

	assert.True(t, c.UpdateQuantity("2", 0), "zero quantity removes the line")
	assert.Len(t, c.Items, 1)

	assert.False(t, c.UpdateQuantity("missing", 2))
}

func TestCart_EmptyingClearsSlot(t *testing.T) {
	var c Cart
	c.Add(product("1", "10"))
	c.Slot.Apply("GUNDAM20")
	assert.Equal(t, SlotApplied, c.Slot.State())

	assert.True(t, c.Remove("1"))
	assert.True(t, c.IsEmpty())
	assert.Equal(t, SlotNone, c.Slot.State())

	c.Add(product("1", "10"))
	c.Slot.Apply("GUNDAM20")
	c.Clear()
	assert.Equal(t, SlotNone, c.Slot.State())
	assert.True(t, c.Subtotal().IsZero())
}

func TestCart_Snapshot(t *testing.T) {
	var c Cart
	c.Add(product("1", "10"))
	snap := c.Snapshot()
	snap[0].Quantity = 99
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestSlot_Transitions(t *testing.T) {
	var s Slot
	assert.Equal(t, SlotNone, s.State())

	s.Apply("GUNDAM20")
	s.Apply("TOOLS5")
	assert.Equal(t, "TOOLS5", s.Code, "at most one discount is applied")

	assert.Equal(t, "TOOLS5", s.Consume())
	assert.Equal(t, SlotNone, s.State())
	assert.Equal(t, "", s.Consume())
}

func TestWishlist_Toggle(t *testing.T) {
	var w Wishlist
	assert.True(t, w.Toggle("1"))
	assert.True(t, w.Toggle("2"))
	assert.False(t, w.Toggle("1"))
	assert.Equal(t, Wishlist{"2"}, w)
	assert.True(t, w.Contains("2"))
}

func TestCompare_ToggleEvictsOldest(t *testing.T) {
	var c Compare
	c.Toggle("1")
	c.Toggle("2")
	c.Toggle("3")
	c.Toggle("4")
	assert.Equal(t, Compare{"2", "3", "4"}, c)

	assert.False(t, c.Toggle("3"))
	assert.Equal(t, Compare{"2", "4"}, c)
}
