package adtsecurehome

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "securehome",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "API requests by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// outcome maps an executor result onto the metric label.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if errors.Is(err, ErrInvalidURL) {
		return "transport_error"
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return "http_error"
	}
	return "api_error"
}
