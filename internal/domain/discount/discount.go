package discount

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// Kind represents how a discount value is interpreted.
type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Valid reports whether k is a known discount kind.
func (k Kind) Valid() bool {
	return k == KindPercentage || k == KindFixed
}

var hundred = decimal.NewFromInt(100)

// Discount is the aggregate root for discount codes.
type Discount struct {
	id                   uuid.UUID
	code                 string
	kind                 Kind
	value                decimal.Decimal // percentage points or currency units
	minOrderAmount       *decimal.Decimal
	maxDiscount          *decimal.Decimal
	validFrom            time.Time
	validTo              time.Time
	isActive             bool
	usageLimit           *int
	usedCount            int
	description          string
	applicableCategories []string
	createdAt            time.Time
	updatedAt            time.Time
}

// Params holds the caller-supplied attributes of a discount.
type Params struct {
	Code                 string
	Kind                 Kind
	Value                decimal.Decimal
	MinOrderAmount       *decimal.Decimal
	MaxDiscount          *decimal.Decimal
	ValidFrom            time.Time
	ValidTo              time.Time
	IsActive             bool
	UsageLimit           *int
	UsedCount            int
	Description          string
	ApplicableCategories []string
}

// NormalizeCode returns the canonical stored form of a discount code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewDiscount creates a new discount after checking the record invariants.
func NewDiscount(p Params) (*Discount, error) {
	p = p.normalized()
	if err := p.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Discount{
		id:                   uuid.New(),
		code:                 NormalizeCode(p.Code),
		kind:                 p.Kind,
		value:                p.Value,
		minOrderAmount:       p.MinOrderAmount,
		maxDiscount:          p.MaxDiscount,
		validFrom:            p.ValidFrom.UTC(),
		validTo:              p.ValidTo.UTC(),
		isActive:             p.IsActive,
		usageLimit:           p.UsageLimit,
		usedCount:            p.UsedCount,
		description:          p.Description,
		applicableCategories: normalizeCategories(p.ApplicableCategories),
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

// normalized treats a zero usage limit or zero cap as unset.
func (p Params) normalized() Params {
	if p.UsageLimit != nil && *p.UsageLimit == 0 {
		p.UsageLimit = nil
	}
	if p.MaxDiscount != nil && p.MaxDiscount.IsZero() {
		p.MaxDiscount = nil
	}
	return p
}

func (p Params) validate() error {
	if NormalizeCode(p.Code) == "" {
		return shared.NewValidationError("discount code is required")
	}
	if !p.Kind.Valid() {
		return shared.NewValidationError("invalid discount kind: " + string(p.Kind))
	}
	if !p.Value.IsPositive() {
		return shared.NewValidationError("discount value must be positive")
	}
	if p.Kind == KindPercentage && p.Value.GreaterThan(hundred) {
		return shared.NewValidationError("percentage discount cannot exceed 100")
	}
	if p.ValidTo.Before(p.ValidFrom) {
		return shared.NewValidationError("valid_to must not be before valid_from")
	}
	if p.MinOrderAmount != nil && p.MinOrderAmount.IsNegative() {
		return shared.NewValidationError("minimum order amount cannot be negative")
	}
	if p.MaxDiscount != nil && p.MaxDiscount.IsNegative() {
		return shared.NewValidationError("max discount cannot be negative")
	}
	if p.UsageLimit != nil && *p.UsageLimit < 0 {
		return shared.NewValidationError("usage limit cannot be negative")
	}
	if p.UsedCount < 0 {
		return shared.NewValidationError("used count cannot be negative")
	}
	return nil
}

// Reconstruct rebuilds a Discount from persistence.
func Reconstruct(id uuid.UUID, p Params, createdAt, updatedAt time.Time) *Discount {
	return &Discount{
		id:                   id,
		code:                 p.Code,
		kind:                 p.Kind,
		value:                p.Value,
		minOrderAmount:       p.MinOrderAmount,
		maxDiscount:          p.MaxDiscount,
		validFrom:            p.ValidFrom,
		validTo:              p.ValidTo,
		isActive:             p.IsActive,
		usageLimit:           p.UsageLimit,
		usedCount:            p.UsedCount,
		description:          p.Description,
		applicableCategories: p.ApplicableCategories,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Update replaces the editable attributes. p.UsedCount is ignored: the
// counter only moves through Redeem and the repository's usage updates.
func (d *Discount) Update(p Params) error {
	p = p.normalized()
	if err := p.validate(); err != nil {
		return err
	}
	d.code = NormalizeCode(p.Code)
	d.kind = p.Kind
	d.value = p.Value
	d.minOrderAmount = p.MinOrderAmount
	d.maxDiscount = p.MaxDiscount
	d.validFrom = p.ValidFrom.UTC()
	d.validTo = p.ValidTo.UTC()
	d.isActive = p.IsActive
	d.usageLimit = p.UsageLimit
	d.description = p.Description
	d.applicableCategories = normalizeCategories(p.ApplicableCategories)
	d.updatedAt = time.Now().UTC()
	return nil
}

// Redeem records one successful use at order completion.
func (d *Discount) Redeem() error {
	if d.usageLimit != nil && d.usedCount >= *d.usageLimit {
		return reject(ReasonUsageLimitReached, d.code)
	}
	d.usedCount++
	d.updatedAt = time.Now().UTC()
	return nil
}

// MatchesCode reports a case-insensitive exact match against code.
func (d *Discount) MatchesCode(code string) bool {
	return strings.EqualFold(d.code, strings.TrimSpace(code))
}

// Params returns the current attributes, e.g. as the base for an edit.
func (d *Discount) Params() Params {
	return Params{
		Code:                 d.code,
		Kind:                 d.kind,
		Value:                d.value,
		MinOrderAmount:       d.minOrderAmount,
		MaxDiscount:          d.maxDiscount,
		ValidFrom:            d.validFrom,
		ValidTo:              d.validTo,
		IsActive:             d.isActive,
		UsageLimit:           d.usageLimit,
		UsedCount:            d.usedCount,
		Description:          d.description,
		ApplicableCategories: d.applicableCategories,
	}
}

func normalizeCategories(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Getters.
func (d *Discount) ID() uuid.UUID                    { return d.id }
func (d *Discount) Code() string                     { return d.code }
func (d *Discount) Kind() Kind                       { return d.kind }
func (d *Discount) Value() decimal.Decimal           { return d.value }
func (d *Discount) MinOrderAmount() *decimal.Decimal { return d.minOrderAmount }
func (d *Discount) MaxDiscount() *decimal.Decimal    { return d.maxDiscount }
func (d *Discount) ValidFrom() time.Time             { return d.validFrom }
func (d *Discount) ValidTo() time.Time               { return d.validTo }
func (d *Discount) IsActive() bool                   { return d.isActive }
func (d *Discount) UsageLimit() *int                 { return d.usageLimit }
func (d *Discount) UsedCount() int                   { return d.usedCount }
func (d *Discount) Description() string              { return d.description }
func (d *Discount) ApplicableCategories() []string   { return d.applicableCategories }
func (d *Discount) CreatedAt() time.Time             { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time             { return d.updatedAt }
