package cart

import (
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
)

// LineItem is one product row in a cart.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds the shopper's line items and their discount slot.
type Cart struct {
	Items []LineItem `json:"items"`
	Slot  Slot       `json:"discount"`
}

// Add puts one unit of p in the cart, incrementing an existing line.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  string(p.Category),
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// UpdateQuantity sets the quantity of a line; zero or less removes it.
// It reports whether the product was in the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove drops a line and reports whether it existed. Emptying the cart
// also empties the discount slot.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			if len(c.Items) == 0 {
				c.Slot.Remove()
			}
			return true
		}
	}
	return false
}

// Clear empties the cart and its discount slot.
func (c *Cart) Clear() {
	c.Items = nil
	c.Slot.Remove()
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Subtotal is the sum of line totals before any discount.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// ItemCount is the total number of units.
func (c *Cart) ItemCount() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Snapshot returns a copy of the line items.
func (c *Cart) Snapshot() []LineItem {
	out := make([]LineItem, len(c.Items))
	copy(out, c.Items)
	return out
}
