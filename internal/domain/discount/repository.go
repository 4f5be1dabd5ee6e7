package discount

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for discounts.
type Repository interface {
	Save(ctx context.Context, d *Discount) error
	Update(ctx context.Context, d *Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Discount, error)
	FindByCode(ctx context.Context, code string) (*Discount, error)
	FindAll(ctx context.Context) ([]*Discount, error)

	// IncrementUsage atomically records one redemption. It fails with
	// ErrUsageLimitReached when the limit has already been used up.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// DecrementUsage reverts a redemption recorded by IncrementUsage.
	DecrementUsage(ctx context.Context, id uuid.UUID) error
}
