package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// MemoryDiscountRepository is a process-local discount.Repository used when
// no database is configured.
type MemoryDiscountRepository struct {
	mu        sync.Mutex
	discounts map[uuid.UUID]*discount.Discount
}

// NewMemoryDiscountRepository creates an empty repository.
func NewMemoryDiscountRepository() *MemoryDiscountRepository {
	return &MemoryDiscountRepository{discounts: make(map[uuid.UUID]*discount.Discount)}
}

// Save stores a new discount.
func (r *MemoryDiscountRepository) Save(_ context.Context, d *discount.Discount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findCodeLocked(d.Code()) != nil {
		return shared.NewConflictError("discount code " + d.Code() + " already exists")
	}
	r.discounts[d.ID()] = cloneDiscount(d)
	return nil
}

// Update replaces a discount's attributes, keeping the stored used count.
func (r *MemoryDiscountRepository) Update(_ context.Context, d *discount.Discount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.discounts[d.ID()]
	if !ok {
		return shared.NewNotFoundError("Discount", d.ID().String())
	}
	if other := r.findCodeLocked(d.Code()); other != nil && other.ID() != d.ID() {
		return shared.NewConflictError("discount code " + d.Code() + " already exists")
	}
	p := d.Params()
	p.UsedCount = existing.UsedCount()
	r.discounts[d.ID()] = discount.Reconstruct(d.ID(), p, d.CreatedAt(), d.UpdatedAt())
	return nil
}

// Delete removes a discount.
func (r *MemoryDiscountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.discounts[id]; !ok {
		return shared.NewNotFoundError("Discount", id.String())
	}
	delete(r.discounts, id)
	return nil
}

// FindByID returns a discount by ID.
func (r *MemoryDiscountRepository) FindByID(_ context.Context, id uuid.UUID) (*discount.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.discounts[id]
	if !ok {
		return nil, shared.NewNotFoundError("Discount", id.String())
	}
	return cloneDiscount(d), nil
}

// FindByCode returns a discount by code, ignoring case.
func (r *MemoryDiscountRepository) FindByCode(_ context.Context, code string) (*discount.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.findCodeLocked(code)
	if d == nil {
		return nil, shared.NewNotFoundError("Discount", code)
	}
	return cloneDiscount(d), nil
}

// FindAll returns every discount ordered by code.
func (r *MemoryDiscountRepository) FindAll(_ context.Context) ([]*discount.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*discount.Discount, 0, len(r.discounts))
	for _, d := range r.discounts {
		out = append(out, cloneDiscount(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

// IncrementUsage records one redemption under the repository lock.
func (r *MemoryDiscountRepository) IncrementUsage(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.discounts[id]
	if !ok {
		return shared.NewNotFoundError("Discount", id.String())
	}
	return d.Redeem()
}

// DecrementUsage reverts one redemption.
func (r *MemoryDiscountRepository) DecrementUsage(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.discounts[id]
	if !ok {
		return shared.NewNotFoundError("Discount", id.String())
	}
	p := d.Params()
	if p.UsedCount > 0 {
		p.UsedCount--
	}
	r.discounts[id] = discount.Reconstruct(id, p, d.CreatedAt(), d.UpdatedAt())
	return nil
}

func (r *MemoryDiscountRepository) findCodeLocked(code string) *discount.Discount {
	for _, d := range r.discounts {
		if d.MatchesCode(code) {
			return d
		}
	}
	return nil
}

func cloneDiscount(d *discount.Discount) *discount.Discount {
	return discount.Reconstruct(d.ID(), d.Params(), d.CreatedAt(), d.UpdatedAt())
}

// MemoryOrderRepository is a process-local order.Repository used when no
// database is configured.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[uuid.UUID]order.Snapshot
}

// NewMemoryOrderRepository creates an empty repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[uuid.UUID]order.Snapshot)}
}

// FindByID retrieves an order by ID.
func (r *MemoryOrderRepository) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.orders[id]
	if !ok {
		return nil, shared.NewNotFoundError("Order", id.String())
	}
	return order.Reconstitute(s), nil
}

// ListAll returns a page of orders, newest first.
func (r *MemoryOrderRepository) ListAll(_ context.Context, page, limit int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]order.Snapshot, 0, len(r.orders))
	for _, s := range r.orders {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (page - 1) * limit
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]*order.Order, 0, end-start)
	for _, s := range all[start:end] {
		out = append(out, order.Reconstitute(s))
	}
	return out, total, nil
}

// GetRevenueStats sums totals of orders whose payment was authorized.
func (r *MemoryOrderRepository) GetRevenueStats(_ context.Context) (decimal.Decimal, map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	revenue := decimal.Zero
	counts := make(map[string]int64)
	for _, s := range r.orders {
		counts[string(s.Status)]++
		switch s.Status {
		case order.StatusProcessing, order.StatusShipped, order.StatusDelivered:
			revenue = revenue.Add(s.Pricing.Total)
		}
	}
	return revenue, counts, nil
}

// Save stores a new order.
func (r *MemoryOrderRepository) Save(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID()]; ok {
		return shared.NewConflictError("order " + o.ID().String() + " already exists")
	}
	r.orders[o.ID()] = o.Snapshot()
	return nil
}

// Update stores o if the persisted version is the one o was loaded at.
func (r *MemoryOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.orders[o.ID()]
	if !ok || s.Version != o.Version()-1 {
		return shared.NewConflictError("order was modified by another transaction")
	}
	r.orders[o.ID()] = o.Snapshot()
	return nil
}
