package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the ordering API
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	ordersCreated   prometheus.Counter
	ordersRejected  *prometheus.CounterVec
}

// New creates metrics registered against the default registerer
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates metrics registered against the given
// registerer. Tests use this with a private registry.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created successfully",
		}),
		ordersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Total number of orders rejected by validation",
		}, []string{"reason"}),
	}

	registerer.MustRegister(m.requestDuration, m.ordersCreated, m.ordersRejected)
	return m
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// OrderCreated increments the created-orders counter
func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// OrderRejected increments the rejected-orders counter for the given
// rejection reason
func (m *Metrics) OrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}
