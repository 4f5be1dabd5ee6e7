package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
	DiscountApplications *prometheus.CounterVec
	OrdersPlaced         *prometheus.CounterVec
	OrderRevenue         prometheus.Counter
}

// New registers the service collectors plus Go and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DiscountApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_applications_total",
			Help:      "Discount code applications by result (applied or a rejection reason).",
		}, []string{"result"}),
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Checkout attempts by outcome.",
		}, []string{"outcome"}),
		OrderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_total",
			Help:      "Sum of placed order totals in the store currency.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.DiscountApplications,
		m.OrdersPlaced,
		m.OrderRevenue,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveDiscount records one discount application attempt.
func (m *Metrics) ObserveDiscount(result string) {
	if m == nil {
		return
	}
	m.DiscountApplications.WithLabelValues(result).Inc()
}

// ObserveOrder records one checkout outcome. Revenue is only added for
// placed orders.
func (m *Metrics) ObserveOrder(outcome string, total float64) {
	if m == nil {
		return
	}
	m.OrdersPlaced.WithLabelValues(outcome).Inc()
	if outcome == "placed" {
		m.OrderRevenue.Add(total)
	}
}
