package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umami",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "umami",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "umami",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Retailer adapter metrics
	retailerSearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umami",
			Subsystem: "retailer",
			Name:      "searches_total",
			Help:      "Total number of retailer item searches",
		},
		[]string{"retailer", "outcome"},
	)

	retailerSearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "umami",
			Subsystem: "retailer",
			Name:      "search_duration_seconds",
			Help:      "Duration of retailer item searches in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"retailer"},
	)

	retailerFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umami",
			Subsystem: "retailer",
			Name:      "mock_fallbacks_total",
			Help:      "Number of searches served from the deterministic mock fixtures",
		},
		[]string{"retailer", "reason"},
	)

	// Price comparison metrics
	priceComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umami",
			Subsystem: "grocery",
			Name:      "price_comparisons_total",
			Help:      "Total number of ingredient price comparisons",
		},
		[]string{"outcome"},
	)

	shoppingListItemsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "umami",
			Subsystem: "grocery",
			Name:      "shopping_list_items_total",
			Help:      "Shopping list line items by price resolution outcome",
		},
		[]string{"resolved"},
	)
)

// RecordRetailerSearch records a retailer search with its outcome and duration
func RecordRetailerSearch(retailer, outcome string, duration time.Duration) {
	retailerSearchTotal.WithLabelValues(retailer, outcome).Inc()
	retailerSearchDuration.WithLabelValues(retailer).Observe(duration.Seconds())
}

// RecordRetailerFallback records a search served from mock fixtures
func RecordRetailerFallback(retailer, reason string) {
	retailerFallbackTotal.WithLabelValues(retailer, reason).Inc()
}

// RecordPriceComparison records a price comparison outcome (ok or no_items)
func RecordPriceComparison(outcome string) {
	priceComparisonsTotal.WithLabelValues(outcome).Inc()
}

// RecordShoppingListItem records whether a list item resolved to a priced product
func RecordShoppingListItem(resolved bool) {
	shoppingListItemsResolved.WithLabelValues(strconv.FormatBool(resolved)).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		// Use the route pattern, not the raw path, to bound cardinality
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := strconv.Itoa(wrapped.statusCode)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
