package metrics

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce sync.Once

	requestsTotal *prometheus.CounterVec
	uploadsTotal  *prometheus.CounterVec
	listingsTotal prometheus.Counter
)

// InitMetrics registers the collectors. Safe to call more than once.
func InitMetrics() {
	initOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mediarepo_http_requests_total",
			Help: "HTTP requests handled, by method, route and status.",
		}, []string{"method", "route", "status"})

		uploadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mediarepo_uploads_total",
			Help: "Accepted uploads, by category.",
		}, []string{"category"})

		listingsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mediarepo_listings_total",
			Help: "Successful listing calls.",
		})

		prometheus.MustRegister(requestsTotal, uploadsTotal, listingsTotal)
	})
}

// Middleware counts every handled request once the response is written.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if requestsTotal == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// ObserveUpload records one accepted upload for the category.
func ObserveUpload(category string) {
	if uploadsTotal != nil {
		uploadsTotal.WithLabelValues(category).Inc()
	}
}

// ObserveListing records one successful listing call.
func ObserveListing() {
	if listingsTotal != nil {
		listingsTotal.Inc()
	}
}

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
