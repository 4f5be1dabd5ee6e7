package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// Category groups products in the storefront.
type Category string

const (
	CategoryGundam      Category = "gundam"
	CategoryFigure      Category = "figure"
	CategoryAccessories Category = "accessories"
	CategoryTools       Category = "tools"
)

// Product is a sellable catalog item.
type Product struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Price              decimal.Decimal  `json:"price"`
	OriginalPrice      *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	Description        string           `json:"description"`
	Category           Category         `json:"category"`
	Subcategory        string           `json:"subcategory,omitempty"`
	Scale              string           `json:"scale,omitempty"`
	Series             string           `json:"series,omitempty"`
	Manufacturer       string           `json:"manufacturer,omitempty"`
	ReleaseDate        string           `json:"release_date,omitempty"`
	Difficulty         string           `json:"difficulty,omitempty"`
	Rating             float64          `json:"rating"`
	Reviews            int              `json:"reviews"`
	InStock            bool             `json:"in_stock"`
	HasModel3D         bool             `json:"has_model_3d"`
	Features           []string         `json:"features,omitempty"`
	Tags               []string         `json:"tags"`
	PriceRange         string           `json:"price_range"`
}

var hundred = decimal.NewFromInt(100)

// ApplyDiscount marks the product down by pct percent of its list price.
// Re-applying replaces the previous markdown rather than compounding it.
func (p *Product) ApplyDiscount(pct decimal.Decimal) error {
	if !pct.IsPositive() || pct.GreaterThanOrEqual(hundred) {
		return shared.NewValidationError("discount percentage must be between 0 and 100")
	}
	list := p.Price
	if p.OriginalPrice != nil {
		list = *p.OriginalPrice
	}
	p.OriginalPrice = &list
	p.Price = list.Mul(hundred.Sub(pct)).Div(hundred).Round(2)
	p.DiscountPercentage = &pct
	return nil
}

// RemoveDiscount restores the list price.
func (p *Product) RemoveDiscount() {
	if p.OriginalPrice != nil {
		p.Price = *p.OriginalPrice
	}
	p.OriginalPrice = nil
	p.DiscountPercentage = nil
}
