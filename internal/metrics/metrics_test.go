package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, SearchDuration)
	assert.NotNil(t, SearchResultsReturned)
	assert.NotNil(t, CacheHitsTotal)
	assert.NotNil(t, CacheMissesTotal)
	assert.NotNil(t, CacheWarmDuration)
	assert.NotNil(t, OrdersCreatedTotal)
	assert.NotNil(t, NotificationFailuresTotal)
}

func TestCountersIncrement(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(CacheHitsTotal)
	CacheHitsTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(CacheHitsTotal))

	before = testutil.ToFloat64(OrdersCreatedTotal)
	OrdersCreatedTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersCreatedTotal))
}
