package catalog

import "context"

// Repository defines access to the product catalog.
type Repository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, p Product) error
}
