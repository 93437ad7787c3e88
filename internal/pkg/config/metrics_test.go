package config

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigMetrics(t *testing.T) {
	// Unique component name: promauto panics on duplicate registration
	metrics := NewConfigMetrics("test_registration")

	require.NotNil(t, metrics.LoadTimestamp)
	require.NotNil(t, metrics.ValidationErrorsTotal)
	require.NotNil(t, metrics.FallbacksTotal)
	require.NotNil(t, metrics.FallbackActive)
	assert.Equal(t, "test_registration", metrics.componentName)
}

func TestConfigMetrics_RecordFallback(t *testing.T) {
	metrics := NewConfigMetrics("test_fallbacks")

	metrics.RecordFallback("cache_sweep_schedule")
	metrics.RecordFallback("cache_sweep_schedule")
	metrics.RecordFallback("request_timeout")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("cache_sweep_schedule")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("request_timeout")))
}

func TestConfigMetrics_RecordValidationError(t *testing.T) {
	metrics := NewConfigMetrics("test_validation")

	metrics.RecordValidationError("sentiment_provider")

	assert.Equal(t, float64(1),
		testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("sentiment_provider")))
}

func TestConfigMetrics_SetFallbackActive(t *testing.T) {
	metrics := NewConfigMetrics("test_active")

	metrics.SetFallbackActive(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
}

func TestConfigMetrics_RecordLoadTimestamp(t *testing.T) {
	metrics := NewConfigMetrics("test_timestamp")

	metrics.RecordLoadTimestamp()

	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
}
