package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/branch-finder/internal/metrics"
)

func TestObserveProvider(t *testing.T) {
	before := testutil.ToFloat64(metrics.ProviderFailTotal.WithLabelValues("test", "find_candidates", "timeout"))
	calls := testutil.ToFloat64(metrics.ProviderRequestsTotal.WithLabelValues("test", "find_candidates"))

	metrics.ObserveProvider("test", "find_candidates", time.Now(), "timeout")
	metrics.ObserveProvider("test", "find_candidates", time.Now(), "")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProviderFailTotal.WithLabelValues("test", "find_candidates", "timeout")))
	assert.Equal(t, calls+2, testutil.ToFloat64(metrics.ProviderRequestsTotal.WithLabelValues("test", "find_candidates")))
}

func TestObserveCache(t *testing.T) {
	hits := testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues("unit"))
	misses := testutil.ToFloat64(metrics.CacheMissesTotal.WithLabelValues("unit"))

	metrics.ObserveCache("unit", true)
	metrics.ObserveCache("unit", false)
	metrics.ObserveCache("unit", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHitsTotal.WithLabelValues("unit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(metrics.CacheMissesTotal.WithLabelValues("unit")))
}

func TestObserveSearch(t *testing.T) {
	empty := testutil.ToFloat64(metrics.EmptySearchesTotal)

	metrics.ObserveSearch(0)
	metrics.ObserveSearch(3)

	assert.Equal(t, empty+1, testutil.ToFloat64(metrics.EmptySearchesTotal))
}
