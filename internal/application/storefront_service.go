package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/session"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
	"github.com/gunpla-hub/service-storefront/internal/platform/metrics"
)

// AddToCartRequest adds one unit of a product.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest sets a line quantity; zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ApplyDiscountRequest applies a discount code to the cart.
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// AppliedDiscountDTO describes the discount in the cart's slot.
type AppliedDiscountDTO struct {
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// CartDTO is the priced cart.
type CartDTO struct {
	Items          []cart.LineItem     `json:"items"`
	ItemCount      int                 `json:"item_count"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	Discount       *AppliedDiscountDTO `json:"discount,omitempty"`
	DiscountState  string              `json:"discount_state"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	Total          decimal.Decimal     `json:"total"`
}

// SessionDTO is the full storefront state of one session.
type SessionDTO struct {
	SessionID string          `json:"session_id"`
	Cart      CartDTO         `json:"cart"`
	Wishlist  []string        `json:"wishlist"`
	Compare   []string        `json:"compare"`
	Filters   catalog.Filters `json:"filters"`
	// Notice explains a discount the service removed on its own, e.g. after
	// the subtotal fell below the code's minimum.
	Notice string `json:"notice,omitempty"`
}

// StorefrontService owns each session's state: the cart with its discount
// slot, the wishlist and compare shortlists, and the saved filters.
type StorefrontService struct {
	store     session.Store
	products  catalog.Repository
	discounts *DiscountService
	now       Clock
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewStorefrontService creates a new StorefrontService.
func NewStorefrontService(
	store session.Store,
	products catalog.Repository,
	discounts *DiscountService,
	now Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		store:     store,
		products:  products,
		discounts: discounts,
		now:       now,
		metrics:   m,
		logger:    logger,
	}
}

// GetState returns the session, re-validating any applied discount.
func (s *StorefrontService) GetState(ctx context.Context, sid string) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(*session.State) error { return nil })
}

// AddToCart adds one unit of a product.
func (s *StorefrontService) AddToCart(ctx context.Context, sid string, req AddToCartRequest) (*SessionDTO, error) {
	p, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.InStock {
		return nil, shared.NewValidationError(fmt.Sprintf("%s is out of stock", p.Name))
	}
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Cart.Add(*p)
		return nil
	})
}

// UpdateQuantity sets a line's quantity.
func (s *StorefrontService) UpdateQuantity(ctx context.Context, sid, productID string, req UpdateQuantityRequest) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		if !st.Cart.UpdateQuantity(productID, *req.Quantity) {
			return shared.NewNotFoundError("Cart item", productID)
		}
		return nil
	})
}

// RemoveFromCart drops a line.
func (s *StorefrontService) RemoveFromCart(ctx context.Context, sid, productID string) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		if !st.Cart.Remove(productID) {
			return shared.NewNotFoundError("Cart item", productID)
		}
		return nil
	})
}

// ClearCart empties the cart and its discount slot.
func (s *StorefrontService) ClearCart(ctx context.Context, sid string) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Cart.Clear()
		return nil
	})
}

// ToggleWishlist adds or removes a product from the wishlist.
func (s *StorefrontService) ToggleWishlist(ctx context.Context, sid, productID string) (*SessionDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Wishlist.Toggle(productID)
		return nil
	})
}

// ToggleCompare adds or removes a product from the compare list.
func (s *StorefrontService) ToggleCompare(ctx context.Context, sid, productID string) (*SessionDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Compare.Toggle(productID)
		return nil
	})
}

// SaveFilters stores the shopper's catalog filters.
func (s *StorefrontService) SaveFilters(ctx context.Context, sid string, f catalog.Filters) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Filters = f
		return nil
	})
}

// ApplyDiscount puts code in the cart's slot if the engine accepts it for
// the current subtotal. A rejected code leaves the slot as it was.
func (s *StorefrontService) ApplyDiscount(ctx context.Context, sid string, req ApplyDiscountRequest) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		if st.Cart.IsEmpty() {
			return shared.NewValidationError("cannot apply a discount to an empty cart")
		}

		all, err := s.discounts.Catalog(ctx)
		if err != nil {
			return err
		}

		applied, err := discount.ApplyByCode(all, req.Code, st.Cart.Subtotal(), s.now())
		if err != nil {
			if ve, ok := discount.AsValidationError(err); ok {
				s.metrics.ObserveDiscount(string(ve.Reason))
				s.logger.Info("discount rejected",
					zap.String("session_id", sid),
					zap.String("code", ve.Code),
					zap.String("reason", string(ve.Reason)),
				)
			}
			return err
		}

		st.Cart.Slot.Apply(applied.Discount.Code())
		s.metrics.ObserveDiscount("applied")
		s.logger.Info("discount applied",
			zap.String("session_id", sid),
			zap.String("code", applied.Discount.Code()),
			zap.String("amount", applied.Amount.StringFixed(2)),
		)
		return nil
	})
}

// RemoveDiscount empties the cart's slot.
func (s *StorefrontService) RemoveDiscount(ctx context.Context, sid string) (*SessionDTO, error) {
	return s.mutate(ctx, sid, func(st *session.State) error {
		st.Cart.Slot.Remove()
		return nil
	})
}

// Summary prices a session's cart without changing it.
func (s *StorefrontService) Summary(ctx context.Context, sid string) (*CartDTO, error) {
	dto, err := s.GetState(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &dto.Cart, nil
}

// mutate loads the session, applies fn, re-validates the discount slot
// against the new subtotal and saves. Nothing is saved when fn fails.
func (s *StorefrontService) mutate(ctx context.Context, sid string, fn func(*session.State) error) (*SessionDTO, error) {
	if err := session.ValidateID(sid); err != nil {
		return nil, err
	}

	st, err := s.store.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}

	all, err := s.discounts.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	notice := ""
	q, err := priceCart(&st.Cart, all, s.now())
	if err != nil {
		ve, ok := discount.AsValidationError(err)
		if !ok {
			return nil, err
		}
		st.Cart.Slot.Remove()
		notice = fmt.Sprintf("Discount %s was removed: %s", ve.Code, ve.Message())
		s.logger.Info("applied discount no longer eligible",
			zap.String("session_id", sid),
			zap.String("code", ve.Code),
			zap.String("reason", string(ve.Reason)),
		)
		q = quote{Subtotal: q.Subtotal, Total: q.Subtotal}
	}

	if err := s.store.Save(ctx, sid, st); err != nil {
		return nil, err
	}

	dto := toSessionDTO(sid, st, q)
	dto.Notice = notice
	return dto, nil
}

func toSessionDTO(sid string, st *session.State, q quote) *SessionDTO {
	items := st.Cart.Snapshot()
	c := CartDTO{
		Items:          items,
		ItemCount:      st.Cart.ItemCount(),
		Subtotal:       q.Subtotal,
		DiscountState:  string(st.Cart.Slot.State()),
		DiscountAmount: decimal.Zero,
		Total:          q.Total,
	}
	if q.Applied != nil {
		d := q.Applied.Discount
		c.Discount = &AppliedDiscountDTO{
			Code:        d.Code(),
			Kind:        string(d.Kind()),
			Value:       d.Value(),
			Description: d.Description(),
			Amount:      q.Applied.Amount,
		}
		c.DiscountAmount = q.Applied.Amount
	}

	wishlist := []string(st.Wishlist)
	if wishlist == nil {
		wishlist = []string{}
	}
	compare := []string(st.Compare)
	if compare == nil {
		compare = []string{}
	}

	return &SessionDTO{
		SessionID: sid,
		Cart:      c,
		Wishlist:  wishlist,
		Compare:   compare,
		Filters:   st.Filters,
	}
}
