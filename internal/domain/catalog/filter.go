package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortBy selects the product ordering.
type SortBy string

const (
	SortByName    SortBy = "name"
	SortByPrice   SortBy = "price"
	SortByRating  SortBy = "rating"
	SortByNewest  SortBy = "newest"
	SortByPopular SortBy = "popular"
)

// SortOrder flips the natural ordering of a SortBy.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// All is the wildcard value for single-choice filters.
const All = "all"

// Filters narrows and orders a product listing.
type Filters struct {
	Search       string          `json:"search"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory"`
	PriceRange   string          `json:"price_range"`
	Manufacturer string          `json:"manufacturer"`
	Difficulty   string          `json:"difficulty"`
	Series       string          `json:"series"`
	Tags         []string        `json:"tags"`
	InStockOnly  bool            `json:"in_stock"`
	HasModel3D   bool            `json:"has_model_3d"`
	MinPrice     decimal.Decimal `json:"min_price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	SortBy       SortBy          `json:"sort_by"`
	SortOrder    SortOrder       `json:"sort_order"`
}

// DefaultFilters matches every demo product, sorted by name.
func DefaultFilters() Filters {
	return Filters{
		Category:     All,
		Subcategory:  All,
		PriceRange:   All,
		Manufacturer: All,
		Difficulty:   All,
		Series:       All,
		Tags:         []string{},
		MinPrice:     decimal.Zero,
		MaxPrice:     decimal.NewFromInt(1000),
		SortBy:       SortByName,
		SortOrder:    SortAsc,
	}
}

// Apply returns the products matching f in f's order. The input is not modified.
func Apply(products []Product, f Filters) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.SortBy, f.SortOrder)
	return out
}

func (f Filters) matches(p Product) bool {
	return matchesSearch(p, f.Search) &&
		matchesChoice(string(p.Category), f.Category) &&
		matchesChoice(p.Subcategory, f.Subcategory) &&
		matchesChoice(p.PriceRange, f.PriceRange) &&
		matchesChoice(p.Manufacturer, f.Manufacturer) &&
		matchesChoice(p.Difficulty, f.Difficulty) &&
		matchesChoice(p.Series, f.Series) &&
		matchesTags(p.Tags, f.Tags) &&
		(!f.InStockOnly || p.InStock) &&
		(!f.HasModel3D || p.HasModel3D) &&
		!p.Price.LessThan(f.MinPrice) &&
		(f.MaxPrice.IsZero() || !p.Price.GreaterThan(f.MaxPrice))
}

func matchesChoice(value, want string) bool {
	return want == "" || want == All || value == want
}

func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	fields := []string{p.Name, p.Description, p.Series, p.Manufacturer}
	fields = append(fields, p.Tags...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesTags succeeds when any wanted tag is present.
func matchesTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortProducts orders in place. Rating, newest and popular are naturally
// descending; SortDesc flips every key.
func sortProducts(products []Product, by SortBy, order SortOrder) {
	cmp := func(a, b Product) int {
		switch by {
		case SortByName:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case SortByPrice:
			return a.Price.Cmp(b.Price)
		case SortByRating:
			return compareFloat(b.Rating, a.Rating)
		case SortByNewest:
			return strings.Compare(releaseKey(b), releaseKey(a))
		case SortByPopular:
			return b.Reviews - a.Reviews
		default:
			return 0
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := cmp(products[i], products[j])
		if order == SortDesc {
			c = -c
		}
		return c < 0
	})
}

func releaseKey(p Product) string {
	if p.ReleaseDate == "" {
		return "0"
	}
	return p.ReleaseDate
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
