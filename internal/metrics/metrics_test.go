package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAnalytics(t *testing.T) {
	before := testutil.ToFloat64(AnalyticsComputations.WithLabelValues("inventory", "ok"))
	RecordAnalytics("inventory", "ok", 0.02)
	assert.Equal(t, before+1, testutil.ToFloat64(AnalyticsComputations.WithLabelValues("inventory", "ok")))
}

func TestRecordUnresolvedSKUsIgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(UnresolvedSKUs)
	RecordUnresolvedSKUs(0)
	RecordUnresolvedSKUs(3)
	assert.Equal(t, before+3, testutil.ToFloat64(UnresolvedSKUs))
}

func TestSetStoreUp(t *testing.T) {
	SetStoreUp("inventory", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(StoreUp.WithLabelValues("inventory")))
	SetStoreUp("inventory", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(StoreUp.WithLabelValues("inventory")))
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(CacheLookups.WithLabelValues("miss"))
	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)
	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheLookups.WithLabelValues("miss")))
}

func TestRecordSeeded(t *testing.T) {
	before := testutil.ToFloat64(SeededRecords.WithLabelValues("product"))
	RecordSeeded("product", 0)
	RecordSeeded("product", 200)
	assert.Equal(t, before+200, testutil.ToFloat64(SeededRecords.WithLabelValues("product")))
}
