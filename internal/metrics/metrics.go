// Package metrics holds the Prometheus collectors shared across mealcart.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	ListsGenerated    prometheus.Counter
	ListItems         prometheus.Histogram
	UnresolvedRecipes prometheus.Counter

	PriceLookups    *prometheus.CounterVec
	PriceFallbacks  *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec
	CacheOps        *prometheus.CounterVec

	WSConnections prometheus.Gauge
}

// New registers every collector on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealcart_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mealcart_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ListsGenerated: f.NewCounter(prometheus.CounterOpts{
			Name: "mealcart_shopping_lists_generated_total",
			Help: "Shopping lists generated from meal plans",
		}),
		ListItems: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mealcart_shopping_list_items",
			Help:    "Aggregated items per generated shopping list",
			Buckets: prometheus.LinearBuckets(0, 10, 10),
		}),
		UnresolvedRecipes: f.NewCounter(prometheus.CounterOpts{
			Name: "mealcart_unresolved_recipes_total",
			Help: "Meal plan entries whose recipe could not be loaded",
		}),
		PriceLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealcart_price_lookups_total",
				Help: "Per-store price lookups by source",
			},
			[]string{"store", "source"},
		),
		PriceFallbacks: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealcart_price_fallbacks_total",
				Help: "Live price lookups replaced by simulated prices",
			},
			[]string{"store", "reason"},
		),
		ProviderLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mealcart_price_provider_duration_seconds",
				Help:    "Live pricing provider latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		CacheOps: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mealcart_price_cache_operations_total",
				Help: "Price cache lookups by result",
			},
			[]string{"operation", "result"},
		),
		WSConnections: f.NewGauge(prometheus.GaugeOpts{
			Name: "mealcart_websocket_connections",
			Help: "Open WebSocket connections",
		}),
	}
}

// Handler serves the collectors registered on g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
