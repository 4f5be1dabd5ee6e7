package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// DiscountRequest holds the attributes to create or replace a discount.
type DiscountRequest struct {
	Code                 string           `json:"code" binding:"required"`
	Kind                 string           `json:"kind" binding:"required,oneof=percentage fixed"`
	Value                decimal.Decimal  `json:"value"`
	MinOrderAmount       *decimal.Decimal `json:"min_order_amount"`
	MaxDiscount          *decimal.Decimal `json:"max_discount"`
	ValidFrom            time.Time        `json:"valid_from" binding:"required"`
	ValidTo              time.Time        `json:"valid_to" binding:"required"`
	IsActive             *bool            `json:"is_active"`
	UsageLimit           *int             `json:"usage_limit"`
	Description          string           `json:"description"`
	ApplicableCategories []string         `json:"applicable_categories"`
}

// ValidateDiscountRequest asks whether a code would apply to a subtotal.
type ValidateDiscountRequest struct {
	Code     string          `json:"code" binding:"required"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// DiscountDTO is the API response representation of a discount.
type DiscountDTO struct {
	ID                   uuid.UUID        `json:"id"`
	Code                 string           `json:"code"`
	Kind                 string           `json:"kind"`
	Value                decimal.Decimal  `json:"value"`
	MinOrderAmount       *decimal.Decimal `json:"min_order_amount,omitempty"`
	MaxDiscount          *decimal.Decimal `json:"max_discount,omitempty"`
	ValidFrom            time.Time        `json:"valid_from"`
	ValidTo              time.Time        `json:"valid_to"`
	IsActive             bool             `json:"is_active"`
	UsageLimit           *int             `json:"usage_limit,omitempty"`
	UsedCount            int              `json:"used_count"`
	Description          string           `json:"description,omitempty"`
	ApplicableCategories []string         `json:"applicable_categories"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// DiscountValidationDTO is the result of validating a code against a subtotal.
type DiscountValidationDTO struct {
	Valid          bool             `json:"valid"`
	Code           string           `json:"code"`
	Reason         string           `json:"reason,omitempty"`
	Message        string           `json:"message,omitempty"`
	Shortfall      *decimal.Decimal `json:"shortfall,omitempty"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	FinalTotal     decimal.Decimal  `json:"final_total"`
}

// DiscountService handles discount administration and code validation.
type DiscountService struct {
	repo   discount.Repository
	now    Clock
	logger *zap.Logger
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(repo discount.Repository, now Clock, logger *zap.Logger) *DiscountService {
	return &DiscountService{repo: repo, now: now, logger: logger}
}

// Catalog returns every discount record for the engine.
func (s *DiscountService) Catalog(ctx context.Context) ([]*discount.Discount, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load discount catalog: %w", err)
	}
	return all, nil
}

// CreateDiscount creates a new discount (admin).
func (s *DiscountService) CreateDiscount(ctx context.Context, req DiscountRequest) (*DiscountDTO, error) {
	d, err := discount.NewDiscount(req.params())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save discount: %w", err)
	}

	s.logger.Info("discount created", zap.String("code", d.Code()))
	return toDiscountDTO(d), nil
}

// UpdateDiscount replaces a discount's attributes (admin). The used count
// only changes through checkout redemptions, so the stored record is
// returned.
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, req DiscountRequest) (*DiscountDTO, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.Update(req.params()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update discount: %w", err)
	}

	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload discount: %w", err)
	}

	s.logger.Info("discount updated", zap.String("code", stored.Code()), zap.String("id", id.String()))
	return toDiscountDTO(stored), nil
}

// DeleteDiscount removes a discount (admin).
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("discount deleted", zap.String("id", id.String()))
	return nil
}

// ListDiscounts returns every discount (admin).
func (s *DiscountService) ListDiscounts(ctx context.Context) ([]*DiscountDTO, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDiscountDTOs(all), nil
}

// ListActiveDiscounts returns the discounts a shopper could use right now,
// regardless of cart contents.
func (s *DiscountService) ListActiveDiscounts(ctx context.Context) ([]*DiscountDTO, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]*discount.Discount, 0, len(all))
	for _, d := range all {
		if discount.Eligible(d, now) {
			active = append(active, d)
		}
	}
	return toDiscountDTOs(active), nil
}

// ValidateDiscount checks a code against a subtotal without touching any
// cart. Rejections are reported in the DTO, not as errors.
func (s *DiscountService) ValidateDiscount(ctx context.Context, req ValidateDiscountRequest) (*DiscountValidationDTO, error) {
	if req.Subtotal.IsNegative() {
		return nil, shared.NewValidationError("subtotal cannot be negative")
	}

	all, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	result := &DiscountValidationDTO{
		Code:           discount.NormalizeCode(req.Code),
		Subtotal:       req.Subtotal,
		DiscountAmount: decimal.Zero,
		FinalTotal:     req.Subtotal,
	}

	applied, err := discount.ApplyByCode(all, req.Code, req.Subtotal, s.now())
	if err != nil {
		ve, ok := discount.AsValidationError(err)
		if !ok {
			return nil, err
		}
		result.Reason = string(ve.Reason)
		result.Message = ve.Message()
		if ve.Reason == discount.ReasonMinimumOrderNotMet {
			result.Shortfall = &ve.Shortfall
		}
		return result, nil
	}

	result.Valid = true
	result.Code = applied.Discount.Code()
	result.DiscountAmount = applied.Amount
	result.FinalTotal = discount.ComputeCartTotal(req.Subtotal, applied)
	return result, nil
}

// SeedDiscounts loads the demo catalog, skipping codes that already exist.
func (s *DiscountService) SeedDiscounts(ctx context.Context, from, to time.Time) error {
	seeded := 0
	for _, d := range discount.SeedCatalog(from, to) {
		err := s.repo.Save(ctx, d)
		if errors.Is(err, shared.ErrConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed discount %s: %w", d.Code(), err)
		}
		seeded++
	}
	s.logger.Info("discount catalog seeded", zap.Int("inserted", seeded))
	return nil
}

func (r DiscountRequest) params() discount.Params {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return discount.Params{
		Code:                 r.Code,
		Kind:                 discount.Kind(r.Kind),
		Value:                r.Value,
		MinOrderAmount:       r.MinOrderAmount,
		MaxDiscount:          r.MaxDiscount,
		ValidFrom:            r.ValidFrom,
		ValidTo:              r.ValidTo,
		IsActive:             active,
		UsageLimit:           r.UsageLimit,
		Description:          r.Description,
		ApplicableCategories: r.ApplicableCategories,
	}
}

func toDiscountDTOs(ds []*discount.Discount) []*DiscountDTO {
	dtos := make([]*DiscountDTO, len(ds))
	for i, d := range ds {
		dtos[i] = toDiscountDTO(d)
	}
	return dtos
}

func toDiscountDTO(d *discount.Discount) *DiscountDTO {
	categories := d.ApplicableCategories()
	if categories == nil {
		categories = []string{}
	}
	return &DiscountDTO{
		ID:                   d.ID(),
		Code:                 d.Code(),
		Kind:                 string(d.Kind()),
		Value:                d.Value(),
		MinOrderAmount:       d.MinOrderAmount(),
		MaxDiscount:          d.MaxDiscount(),
		ValidFrom:            d.ValidFrom(),
		ValidTo:              d.ValidTo(),
		IsActive:             d.IsActive(),
		UsageLimit:           d.UsageLimit(),
		UsedCount:            d.UsedCount(),
		Description:          d.Description(),
		ApplicableCategories: categories,
		CreatedAt:            d.CreatedAt(),
		UpdatedAt:            d.UpdatedAt(),
	}
}
