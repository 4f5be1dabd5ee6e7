package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentGateway is the anti-corruption layer in front of the card/PayPal
// processor. Amounts are in major currency units.
type PaymentGateway interface {
	// Authorize places a hold for amount and returns the processor reference.
	Authorize(ctx context.Context, amount decimal.Decimal, currency, customerEmail, method string) (paymentRef string, err error)

	// Void releases an authorization that will not be captured.
	Void(ctx context.Context, paymentRef string) error
}

// ErrPaymentDeclined is returned when the simulated processor declines.
var ErrPaymentDeclined = fmt.Errorf("payment declined")

// SimulatedGateway approves every payment after an optional delay. Customer
// emails ending in "+decline@..." are declined so failure paths can be
// exercised end to end.
type SimulatedGateway struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedGateway creates a gateway that waits delay before answering.
func NewSimulatedGateway(delay time.Duration, logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{delay: delay, logger: logger}
}

// Authorize simulates an authorization hold.
func (g *SimulatedGateway) Authorize(ctx context.Context, amount decimal.Decimal, currency, customerEmail, method string) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if strings.Contains(strings.ToLower(customerEmail), "+decline@") {
		g.logger.Info("[SIMULATED GATEWAY] authorization declined",
			zap.String("customer_email", customerEmail),
			zap.String("amount", amount.StringFixed(2)),
		)
		return "", ErrPaymentDeclined
	}

	ref := fmt.Sprintf("pay_sim_%s", uuid.New().String()[:8])
	g.logger.Info("[SIMULATED GATEWAY] authorization approved",
		zap.String("payment_ref", ref),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("currency", currency),
		zap.String("method", method),
	)
	return ref, nil
}

// Void simulates releasing an authorization.
func (g *SimulatedGateway) Void(_ context.Context, paymentRef string) error {
	g.logger.Info("[SIMULATED GATEWAY] authorization voided", zap.String("payment_ref", paymentRef))
	return nil
}
