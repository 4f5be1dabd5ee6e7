package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// DiscountModel is the GORM model for the discounts table.
type DiscountModel struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Code                 string              `gorm:"type:varchar(50);uniqueIndex;not null"`
	Kind                 string              `gorm:"type:varchar(20);not null"`
	Value                decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	MinOrderAmount       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	MaxDiscount          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ValidFrom            time.Time           `gorm:"type:timestamptz;not null"`
	ValidTo              time.Time           `gorm:"type:timestamptz;not null"`
	IsActive             bool                `gorm:"not null;default:true"`
	UsageLimit           *int
	UsedCount            int            `gorm:"not null;default:0"`
	Description          string         `gorm:"type:text"`
	ApplicableCategories pq.StringArray `gorm:"type:text[]"`
	CreatedAt            time.Time      `gorm:"type:timestamptz;not null"`
	UpdatedAt            time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (DiscountModel) TableName() string { return "discounts" }

// GormDiscountRepository implements discount.Repository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GormDiscountRepository.
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// Save persists a new discount. A duplicate code is a conflict.
func (r *GormDiscountRepository) Save(ctx context.Context, d *discount.Discount) error {
	model := toDiscountModel(d)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewConflictError(fmt.Sprintf("discount code %s already exists", d.Code()))
		}
		return err
	}
	return nil
}

// Update overwrites a discount's attributes. used_count is left alone so
// concurrent redemptions are never lost to an admin edit.
func (r *GormDiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	model := toDiscountModel(d)
	result := r.db.WithContext(ctx).
		Model(&DiscountModel{}).
		Where("id = ?", model.ID).
		Select("code", "kind", "value", "min_order_amount", "max_discount", "valid_from", "valid_to",
			"is_active", "usage_limit", "description", "applicable_categories", "updated_at").
		Updates(&model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return shared.NewConflictError(fmt.Sprintf("discount code %s already exists", d.Code()))
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Discount", d.ID().String())
	}
	return nil
}

// Delete removes a discount.
func (r *GormDiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DiscountModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Discount", id.String())
	}
	return nil
}

// FindByID returns a discount by ID.
func (r *GormDiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	var model DiscountModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Discount", id.String())
		}
		return nil, err
	}
	return toDiscountDomain(&model), nil
}

// FindByCode returns a discount by code, ignoring case.
func (r *GormDiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	var model DiscountModel
	if err := r.db.WithContext(ctx).Where("code = ?", discount.NormalizeCode(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Discount", code)
		}
		return nil, err
	}
	return toDiscountDomain(&model), nil
}

// FindAll returns every discount ordered by code.
func (r *GormDiscountRepository) FindAll(ctx context.Context) ([]*discount.Discount, error) {
	var models []DiscountModel
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	discounts := make([]*discount.Discount, len(models))
	for i := range models {
		discounts[i] = toDiscountDomain(&models[i])
	}
	return discounts, nil
}

// IncrementUsage records one redemption with a single conditional UPDATE so
// two checkouts racing for the last use cannot both win.
func (r *GormDiscountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&DiscountModel{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", id).
		UpdateColumns(map[string]interface{}{
			"used_count": gorm.Expr("used_count + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	d, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return &discount.ValidationError{Reason: discount.ReasonUsageLimitReached, Code: d.Code()}
}

// DecrementUsage reverts a redemption, never going below zero.
func (r *GormDiscountRepository) DecrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&DiscountModel{}).
		Where("id = ? AND used_count > 0", id).
		UpdateColumns(map[string]interface{}{
			"used_count": gorm.Expr("used_count - 1"),
			"updated_at": time.Now().UTC(),
		}).Error
}

// isUniqueViolation reports a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState() == "23505"
	}
	return false
}

func toDiscountModel(d *discount.Discount) DiscountModel {
	return DiscountModel{
		ID:                   d.ID(),
		Code:                 d.Code(),
		Kind:                 string(d.Kind()),
		Value:                d.Value(),
		MinOrderAmount:       toNullDecimal(d.MinOrderAmount()),
		MaxDiscount:          toNullDecimal(d.MaxDiscount()),
		ValidFrom:            d.ValidFrom(),
		ValidTo:              d.ValidTo(),
		IsActive:             d.IsActive(),
		UsageLimit:           d.UsageLimit(),
		UsedCount:            d.UsedCount(),
		Description:          d.Description(),
		ApplicableCategories: pq.StringArray(d.ApplicableCategories()),
		CreatedAt:            d.CreatedAt(),
		UpdatedAt:            d.UpdatedAt(),
	}
}

func toDiscountDomain(m *DiscountModel) *discount.Discount {
	return discount.Reconstruct(m.ID, discount.Params{
		Code:                 m.Code,
		Kind:                 discount.Kind(m.Kind),
		Value:                m.Value,
		MinOrderAmount:       fromNullDecimal(m.MinOrderAmount),
		MaxDiscount:          fromNullDecimal(m.MaxDiscount),
		ValidFrom:            m.ValidFrom,
		ValidTo:              m.ValidTo,
		IsActive:             m.IsActive,
		UsageLimit:           m.UsageLimit,
		UsedCount:            m.UsedCount,
		Description:          m.Description,
		ApplicableCategories: []string(m.ApplicableCategories),
	}, m.CreatedAt, m.UpdatedAt)
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
