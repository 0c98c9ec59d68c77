package apiclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "society_admin",
			Name:      "upstream_requests_total",
			Help:      "Total requests sent to the society API by method and status",
		},
		[]string{"method", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "society_admin",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of requests sent to the society API",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// observe records one upstream call. status 0 means the request never got a response.
func observe(method string, status int, started time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(method, label).Inc()
	upstreamDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
