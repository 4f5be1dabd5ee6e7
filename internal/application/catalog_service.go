package application

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
)

// ProductDiscountRequest marks a product down by a percentage.
type ProductDiscountRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
}

// ProductListDTO is a filtered product listing.
type ProductListDTO struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Filters  catalog.Filters   `json:"filters"`
}

// CatalogService serves the product catalog.
type CatalogService struct {
	repo   catalog.Repository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo catalog.Repository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns the products matching f in f's order.
func (s *CatalogService) ListProducts(ctx context.Context, f catalog.Filters) (*ProductListDTO, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products := catalog.Apply(all, f)
	return &ProductListDTO{Products: products, Total: len(products), Filters: f}, nil
}

// GetProduct returns one product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// ApplyProductDiscount marks a product down (admin).
func (s *CatalogService) ApplyProductDiscount(ctx context.Context, id string, req ProductDiscountRequest) (*catalog.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.ApplyDiscount(req.Percentage); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}

	s.logger.Info("product marked down",
		zap.String("product_id", id),
		zap.String("percentage", req.Percentage.String()),
		zap.String("price", p.Price.StringFixed(2)),
	)
	return p, nil
}

// RemoveProductDiscount restores a product's list price (admin).
func (s *CatalogService) RemoveProductDiscount(ctx context.Context, id string) (*catalog.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.RemoveDiscount()
	if err := s.repo.Update(ctx, *p); err != nil {
		return nil, err
	}

	s.logger.Info("product markdown removed", zap.String("product_id", id))
	return p, nil
}
