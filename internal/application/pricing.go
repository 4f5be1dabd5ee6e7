package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
)

// quote is a cart priced through the discount engine.
type quote struct {
	Subtotal decimal.Decimal
	Applied  *discount.AppliedDiscount
	Total    decimal.Decimal
}

// priceCart prices c with the code in its slot, if any. A slot code that no
// longer applies is returned as the engine's rejection.
func priceCart(c *cart.Cart, all []*discount.Discount, now time.Time) (quote, error) {
	q := quote{Subtotal: c.Subtotal()}
	if c.Slot.State() == cart.SlotApplied {
		applied, err := discount.ApplyByCode(all, c.Slot.Code, q.Subtotal, now)
		if err != nil {
			q.Total = q.Subtotal
			return q, err
		}
		q.Applied = applied
	}
	q.Total = discount.ComputeCartTotal(q.Subtotal, q.Applied)
	return q, nil
}
