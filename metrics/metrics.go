package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts handled HTTP requests by method, route, and status
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	// RequestDuration observes per-route handler latency
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// OrdersPlaced counts successfully committed checkout transactions
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders created",
	})
)

func Init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, OrdersPlaced)
}
