package session

import (
	"context"
	"regexp"

	"github.com/gunpla-hub/service-storefront/internal/domain/cart"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/shared"
)

// State is everything a shopper accumulates in one browsing session.
type State struct {
	Cart     cart.Cart       `json:"cart"`
	Wishlist cart.Wishlist   `json:"wishlist"`
	Compare  cart.Compare    `json:"compare"`
	Filters  catalog.Filters `json:"filters"`
}

// New returns the state of a fresh session.
func New() *State {
	return &State{
		Wishlist: cart.Wishlist{},
		Compare:  cart.Compare{},
		Filters:  catalog.DefaultFilters(),
	}
}

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// ValidateID rejects session ids that are not opaque tokens.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return shared.NewValidationError("session id must be 8-64 characters of [A-Za-z0-9_-]")
	}
	return nil
}

// Store persists session state keyed by session id.
type Store interface {
	// Load returns the stored state, or a fresh one when none exists.
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, s *State) error
	Delete(ctx context.Context, id string) error
}
