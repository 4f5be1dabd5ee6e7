package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New("storefront")

	m.ObserveDiscount("applied")
	m.ObserveDiscount("expired")
	m.ObserveDiscount("applied")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DiscountApplications.WithLabelValues("applied")))

	m.ObserveOrder("placed", 80)
	m.ObserveOrder("failed", 50)
	assert.Equal(t, 80.0, testutil.ToFloat64(m.OrderRevenue))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("failed")))
}

func TestObserve_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveDiscount("applied")
		m.ObserveOrder("placed", 1)
	})
}
