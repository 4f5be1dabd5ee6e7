package discount

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default validity window of the demo catalog.
var (
	SeedValidFrom = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	SeedValidTo   = time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
)

type seedRow struct {
	code        string
	kind        Kind
	value       int64
	minOrder    int64
	usageLimit  int
	usedCount   int
	description string
	categories  []string
}

var seedRows = []seedRow{
	{"GUNDAM20", KindPercentage, 20, 0, 1000, 45, "Get 20% off on all Gundam models", []string{"gundam"}},
	{"FIGURE10", KindPercentage, 10, 50, 500, 23, "Save 10% on premium figures (min $50)", []string{"figure"}},
	{"WELCOME15", KindPercentage, 15, 30, 200, 67, "Welcome discount for new customers", nil},
	{"TOOLS5", KindFixed, 5, 25, 300, 12, "$5 off professional tools", []string{"tools"}},
}

// SeedCatalog builds the demo discount catalog valid between from and to.
func SeedCatalog(from, to time.Time) []*Discount {
	out := make([]*Discount, 0, len(seedRows))
	for _, r := range seedRows {
		minOrder := decimal.NewFromInt(r.minOrder)
		limit := r.usageLimit
		d, err := NewDiscount(Params{
			Code:                 r.code,
			Kind:                 r.kind,
			Value:                decimal.NewFromInt(r.value),
			MinOrderAmount:       &minOrder,
			ValidFrom:            from,
			ValidTo:              to,
			IsActive:             true,
			UsageLimit:           &limit,
			UsedCount:            r.usedCount,
			Description:          r.description,
			ApplicableCategories: r.categories,
		})
		if err != nil {
			panic("discount: invalid seed row " + r.code + ": " + err.Error())
		}
		out = append(out, d)
	}
	return out
}
