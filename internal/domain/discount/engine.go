package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppliedDiscount pairs a discount with the savings it yields for one cart.
type AppliedDiscount struct {
	Discount *Discount
	Amount   decimal.Decimal
}

// Validate checks whether d may be applied to a cart with the given subtotal
// at instant now. Checks run in a fixed order and stop at the first failure.
func Validate(d *Discount, subtotal decimal.Decimal, now time.Time) error {
	if !d.isActive {
		return reject(ReasonInactive, d.code)
	}
	if now.Before(d.validFrom) {
		return reject(ReasonNotYetValid, d.code)
	}
	if now.After(d.validTo) {
		return reject(ReasonExpired, d.code)
	}
	if d.usageLimit != nil && d.usedCount >= *d.usageLimit {
		return reject(ReasonUsageLimitReached, d.code)
	}
	if d.minOrderAmount != nil && subtotal.LessThan(*d.minOrderAmount) {
		return &ValidationError{
			Reason:       ReasonMinimumOrderNotMet,
			Code:         d.code,
			MinimumOrder: *d.minOrderAmount,
			Shortfall:    d.minOrderAmount.Sub(subtotal),
		}
	}
	return nil
}

// ComputeDiscountAmount returns the savings d yields on subtotal, always
// within [0, subtotal].
func ComputeDiscountAmount(d *Discount, subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch d.kind {
	case KindPercentage:
		amount = subtotal.Mul(d.value).Div(hundred)
		if d.maxDiscount != nil && amount.GreaterThan(*d.maxDiscount) {
			amount = *d.maxDiscount
		}
	case KindFixed:
		amount = decimal.Min(d.value, subtotal)
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(amount, subtotal)
}

// Find looks up a discount by case-insensitive exact code match.
func Find(catalog []*Discount, code string) (*Discount, bool) {
	for _, d := range catalog {
		if d.MatchesCode(code) {
			return d, true
		}
	}
	return nil, false
}

// ApplyByCode resolves code against catalog, validates it and computes the
// savings. It never changes the discount's used count.
func ApplyByCode(catalog []*Discount, code string, subtotal decimal.Decimal, now time.Time) (*AppliedDiscount, error) {
	d, ok := Find(catalog, code)
	if !ok {
		return nil, reject(ReasonNotFound, NormalizeCode(code))
	}
	if err := Validate(d, subtotal, now); err != nil {
		return nil, err
	}
	return &AppliedDiscount{Discount: d, Amount: ComputeDiscountAmount(d, subtotal)}, nil
}

// ComputeCartTotal derives the final total, floored at zero.
func ComputeCartTotal(subtotal decimal.Decimal, applied *AppliedDiscount) decimal.Decimal {
	if applied == nil {
		return subtotal
	}
	total := subtotal.Sub(applied.Amount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Eligible reports whether d would currently pass validation ignoring the
// cart minimum, matching the listing in the discount center.
func Eligible(d *Discount, now time.Time) bool {
	return d.isActive &&
		!now.Before(d.validFrom) &&
		!now.After(d.validTo) &&
		(d.usageLimit == nil || d.usedCount < *d.usageLimit)
}
