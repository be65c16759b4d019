package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "branchfinder_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "branchfinder_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2500},
	}, []string{"method", "route"})
	SearchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "branchfinder_search_results",
		Help:    "Number of locations returned per search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})
	EmptySearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "branchfinder_empty_searches_total",
		Help: "Searches that matched no location",
	})
	ProviderRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "branchfinder_provider_requests_total",
		Help: "Location provider calls by provider and operation",
	}, []string{"provider", "operation"})
	ProviderFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "branchfinder_provider_fail_total",
		Help: "Location provider failures by provider, operation and kind",
	}, []string{"provider", "operation", "kind"})
	ProviderDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "branchfinder_provider_duration_ms",
		Help:    "Location provider call duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2500},
	}, []string{"provider", "operation"})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "branchfinder_cache_hits_total",
		Help: "Cache hits by cache name",
	}, []string{"cache"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "branchfinder_cache_misses_total",
		Help: "Cache misses by cache name",
	}, []string{"cache"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(EmptySearchesTotal)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderFailTotal)
	prometheus.MustRegister(ProviderDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
}

// ObserveProvider records one provider call. kind is empty on success.
func ObserveProvider(provider, operation string, started time.Time, kind string) {
	ProviderRequestsTotal.WithLabelValues(provider, operation).Inc()
	ProviderDurationMs.WithLabelValues(provider, operation).Observe(float64(time.Since(started).Milliseconds()))
	if kind != "" {
		ProviderFailTotal.WithLabelValues(provider, operation, kind).Inc()
	}
}

// ObserveCache records a cache lookup.
func ObserveCache(cache string, hit bool) {
	if hit {
		CacheHitsTotal.WithLabelValues(cache).Inc()
		return
	}
	CacheMissesTotal.WithLabelValues(cache).Inc()
}

// ObserveSearch records the size of a search result.
func ObserveSearch(results int) {
	SearchResults.Observe(float64(results))
	if results == 0 {
		EmptySearchesTotal.Inc()
	}
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
