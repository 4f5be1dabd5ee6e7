package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// ProductModel is the GORM model for the products table.
type ProductModel struct {
	ID                 string              `gorm:"type:varchar(36);primaryKey"`
	Name               string              `gorm:"type:varchar(255);not null"`
	Price              decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	OriginalPrice      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	DiscountPercentage decimal.NullDecimal `gorm:"type:numeric(5,2)"`
	Description        string              `gorm:"type:text"`
	Category           string              `gorm:"type:varchar(20);not null;index"`
	Subcategory        string              `gorm:"type:varchar(50)"`
	Scale              string              `gorm:"type:varchar(20)"`
	Series             string              `gorm:"type:varchar(100)"`
	Manufacturer       string              `gorm:"type:varchar(100)"`
	ReleaseDate        string              `gorm:"type:varchar(10)"`
	Difficulty         string              `gorm:"type:varchar(20)"`
	Rating             float64
	Reviews            int
	InStock            bool           `gorm:"not null;default:true"`
	HasModel3D         bool           `gorm:"column:has_model_3d;not null;default:false"`
	Features           pq.StringArray `gorm:"type:text[]"`
	Tags               pq.StringArray `gorm:"type:text[]"`
	PriceRange         string         `gorm:"type:varchar(20)"`
}

// TableName sets the table name.
func (ProductModel) TableName() string { return "products" }

// GormProductRepository implements catalog.Repository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns every product.
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	products := make([]catalog.Product, len(models))
	for i := range models {
		products[i] = toProductDomain(&models[i])
	}
	sortByNumericID(products)
	return products, nil
}

// FindByID returns a product by ID.
func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	var model ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Product", id)
		}
		return nil, err
	}
	p := toProductDomain(&model)
	return &p, nil
}

// Update writes the pricing fields of a product.
func (r *GormProductRepository) Update(ctx context.Context, p catalog.Product) error {
	model := toProductModel(p)
	result := r.db.WithContext(ctx).
		Model(&ProductModel{}).
		Where("id = ?", p.ID).
		Select("price", "original_price", "discount_percentage", "in_stock").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Product", p.ID)
	}
	return nil
}

// SeedIfEmpty inserts products when the table has none.
func (r *GormProductRepository) SeedIfEmpty(ctx context.Context, products []catalog.Product, logger *zap.Logger) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	models := make([]ProductModel, len(products))
	for i, p := range products {
		models[i] = toProductModel(p)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	logger.Info("product catalog seeded", zap.Int("count", len(models)))
	return nil
}

func toProductModel(p catalog.Product) ProductModel {
	return ProductModel{
		ID:                 p.ID,
		Name:               p.Name,
		Price:              p.Price,
		OriginalPrice:      toNullDecimal(p.OriginalPrice),
		DiscountPercentage: toNullDecimal(p.DiscountPercentage),
		Description:        p.Description,
		Category:           string(p.Category),
		Subcategory:        p.Subcategory,
		Scale:              p.Scale,
		Series:             p.Series,
		Manufacturer:       p.Manufacturer,
		ReleaseDate:        p.ReleaseDate,
		Difficulty:         p.Difficulty,
		Rating:             p.Rating,
		Reviews:            p.Reviews,
		InStock:            p.InStock,
		HasModel3D:         p.HasModel3D,
		Features:           pq.StringArray(p.Features),
		Tags:               pq.StringArray(p.Tags),
		PriceRange:         p.PriceRange,
	}
}

func toProductDomain(m *ProductModel) catalog.Product {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return catalog.Product{
		ID:                 m.ID,
		Name:               m.Name,
		Price:              m.Price,
		OriginalPrice:      fromNullDecimal(m.OriginalPrice),
		DiscountPercentage: fromNullDecimal(m.DiscountPercentage),
		Description:        m.Description,
		Category:           catalog.Category(m.Category),
		Subcategory:        m.Subcategory,
		Scale:              m.Scale,
		Series:             m.Series,
		Manufacturer:       m.Manufacturer,
		ReleaseDate:        m.ReleaseDate,
		Difficulty:         m.Difficulty,
		Rating:             m.Rating,
		Reviews:            m.Reviews,
		InStock:            m.InStock,
		HasModel3D:         m.HasModel3D,
		Features:           []string(m.Features),
		Tags:               tags,
		PriceRange:         m.PriceRange,
	}
}

// MemoryProductRepository is a process-local catalog.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]catalog.Product
}

// NewMemoryProductRepository creates a catalog holding products.
func NewMemoryProductRepository(products []catalog.Product) *MemoryProductRepository {
	m := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &MemoryProductRepository{products: m}
}

// FindAll returns every product ordered by id.
func (r *MemoryProductRepository) FindAll(_ context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sortByNumericID(out)
	return out, nil
}

// FindByID returns a copy of one product.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, shared.NewNotFoundError("Product", id)
	}
	return &p, nil
}

// Update replaces a stored product.
func (r *MemoryProductRepository) Update(_ context.Context, p catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return shared.NewNotFoundError("Product", p.ID)
	}
	r.products[p.ID] = p
	return nil
}

// sortByNumericID orders demo ids ("1", "2", ... "20") numerically and
// falls back to lexical order for anything else.
func sortByNumericID(products []catalog.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, errA := strconv.Atoi(products[i].ID)
		b, errB := strconv.Atoi(products[j].ID)
		if errA == nil && errB == nil {
			return a < b
		}
		return products[i].ID < products[j].ID
	})
}
