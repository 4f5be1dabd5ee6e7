package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the persistence contract for Order aggregates.
type Repository interface {
	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// ListAll retrieves all orders with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*Order, int64, error)

	// GetRevenueStats returns order statistics (admin).
	GetRevenueStats(ctx context.Context) (revenue decimal.Decimal, countByStatus map[string]int64, err error)

	// Save persists a new order aggregate.
	Save(ctx context.Context, o *Order) error

	// Update persists changes to an existing order with optimistic locking.
	Update(ctx context.Context, o *Order) error
}
