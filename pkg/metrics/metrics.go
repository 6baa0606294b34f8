package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "http",
	Name:      "request_duration_seconds",
	Help:      "A histogram of duration, in seconds, handling HTTP requests.",
	Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
}, []string{"method", "path", "status"})

var staleDiscards = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "storefront",
	Subsystem: "view",
	Name:      "stale_discards_total",
	Help:      "Fetch results dropped because a newer request for the same view was issued.",
})

// Middleware registers metrics with promRegistry and returns a middleware that
// emits a request_duration_seconds metric on every request.
//
// The metrics registered with the registry include:
//   - the standard process and go metrics
//   - the request_duration_seconds metric emitted by the middleware
//   - the stale_discards_total counter fed by StaleDiscard
func Middleware(promRegistry prometheus.Registerer) gin.HandlerFunc {
	promRegistry.MustRegister(requestDuration)
	promRegistry.MustRegister(staleDiscards)
	promRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promRegistry.MustRegister(collectors.NewGoCollector())

	return func(c *gin.Context) {
		t := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestDuration.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Observe(time.Since(t).Seconds())
	}
}

// StaleDiscard counts one discarded out-of-order fetch result.
func StaleDiscard() {
	staleDiscards.Inc()
}

// Handler serves prometheus metrics from promRegistry.
func Handler(promRegistry *prometheus.Registry) gin.HandlerFunc {
	handler := promhttp.InstrumentMetricHandler(
		promRegistry,
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
