package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "washbay",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, endpoint and status.",
		},
		[]string{"method", "endpoint", "status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests)
	})
}

// IncHTTP increments the counter for a request.
func IncHTTP(method, endpoint string, status int) {
	httpRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}
