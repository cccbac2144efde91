package krakenapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kraken_api_latency_ms",
		Help:    "The histogram of latency returned by Kraken REST API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

var requestErrorMetrics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kraken_api_request_errors_total",
		Help: "The number of failed Kraken REST API calls by error kind",
	},
	[]string{"path", "kind"},
)

// recordLatencyMetrics records the round trip latency, statusCode 0 means the exchange
// failed before a response arrived.
func recordLatencyMetrics(req *http.Request, statusCode int, latency time.Duration) {
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}

	latencyMetrics.With(prometheus.Labels{
		"path":        req.URL.Path,
		"status_code": code,
	}).Observe(float64(latency.Milliseconds()))
}

func recordErrorMetrics(path string, err error) {
	requestErrorMetrics.With(prometheus.Labels{
		"path": path,
		"kind": string(KindOf(err)),
	}).Inc()
}
