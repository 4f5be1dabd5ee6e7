package discount

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Reason identifies why a discount code was rejected.
type Reason string

const (
	ReasonNotFound           Reason = "not_found"
	ReasonInactive           Reason = "inactive"
	ReasonNotYetValid        Reason = "not_yet_valid"
	ReasonExpired            Reason = "expired"
	ReasonUsageLimitReached  Reason = "usage_limit_reached"
	ReasonMinimumOrderNotMet Reason = "minimum_order_not_met"
)

var (
	// ErrNotFound indicates no discount exists for the supplied code.
	ErrNotFound = errors.New("discount: code not found")
	// ErrInactive indicates the discount has been switched off.
	ErrInactive = errors.New("discount: inactive")
	// ErrNotYetValid indicates the validity window has not opened.
	ErrNotYetValid = errors.New("discount: not yet valid")
	// ErrExpired indicates the validity window has closed.
	ErrExpired = errors.New("discount: expired")
	// ErrUsageLimitReached indicates every allowed redemption has been used.
	ErrUsageLimitReached = errors.New("discount: usage limit reached")
	// ErrMinimumOrderNotMet indicates the cart subtotal is below the required minimum.
	ErrMinimumOrderNotMet = errors.New("discount: minimum order not met")
)

var reasonErrors = map[Reason]error{
	ReasonNotFound:           ErrNotFound,
	ReasonInactive:           ErrInactive,
	ReasonNotYetValid:        ErrNotYetValid,
	ReasonExpired:            ErrExpired,
	ReasonUsageLimitReached:  ErrUsageLimitReached,
	ReasonMinimumOrderNotMet: ErrMinimumOrderNotMet,
}

// ValidationError is a user-displayable rejection of a discount code.
type ValidationError struct {
	Reason Reason
	Code   string

	// Set for ReasonMinimumOrderNotMet only.
	MinimumOrder decimal.Decimal
	Shortfall    decimal.Decimal
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", reasonErrors[e.Reason], e.Code)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error { return reasonErrors[e.Reason] }

// ReasonCode is the machine-readable rejection reason.
func (e *ValidationError) ReasonCode() string { return string(e.Reason) }

// Message renders the rejection for display to a shopper.
func (e *ValidationError) Message() string {
	switch e.Reason {
	case ReasonNotFound:
		return "Invalid discount code"
	case ReasonInactive:
		return "This discount is no longer active"
	case ReasonNotYetValid:
		return "This discount is not yet valid"
	case ReasonExpired:
		return "This discount has expired"
	case ReasonUsageLimitReached:
		return "This discount has reached its usage limit"
	case ReasonMinimumOrderNotMet:
		return fmt.Sprintf("Minimum order amount is $%s (add $%s more)",
			e.MinimumOrder.StringFixed(2), e.Shortfall.StringFixed(2))
	default:
		return "This discount cannot be applied"
	}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func reject(reason Reason, code string) *ValidationError {
	return &ValidationError{Reason: reason, Code: code}
}
