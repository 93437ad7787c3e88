package sentiment

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ScoreMetricsRecorder defines the interface for recording scoring metrics.
// This interface abstracts the metrics recording implementation, enabling:
//   - Mocking in unit tests (inject mock recorder instead of Prometheus)
//   - Swapping metrics systems (DataDog, New Relic, OpenTelemetry, etc.)
//   - Reusability across different providers (Claude, OpenAI, lexicon)
type ScoreMetricsRecorder interface {
	// RecordPolarity records a polarity score returned by a provider.
	RecordPolarity(polarity float64)

	// RecordDuration records the time taken to score one text.
	RecordDuration(duration time.Duration)

	// RecordFailure increments the counter for failed scoring calls.
	RecordFailure()
}

// PrometheusScoreMetrics implements ScoreMetricsRecorder using Prometheus metrics.
// This is the production implementation that records metrics to Prometheus.
type PrometheusScoreMetrics struct {
	polarityHistogram prometheus.Histogram
	durationHistogram prometheus.Histogram
	failureCounter    prometheus.Counter
}

var (
	prometheusMetricsInstance *PrometheusScoreMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		// If it's not an AlreadyRegisteredError, use promauto which handles this gracefully
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusScoreMetrics creates a new Prometheus-based metrics recorder.
// It initializes and registers all required Prometheus metrics.
// Uses singleton pattern to avoid duplicate metric registration in tests.
func NewPrometheusScoreMetrics() *PrometheusScoreMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusScoreMetrics{
			polarityHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "sentiment_polarity_score",
				Help:    "Distribution of polarity scores returned by providers (-1.0 to 1.0)",
				Buckets: []float64{-1.0, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1.0},
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "sentiment_scoring_duration_seconds",
				Help:    "Time taken to score one text via a sentiment provider",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			}),
			failureCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "sentiment_scoring_failures_total",
				Help: "Total number of failed sentiment scoring calls",
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordPolarity implements ScoreMetricsRecorder.RecordPolarity
func (p *PrometheusScoreMetrics) RecordPolarity(polarity float64) {
	p.polarityHistogram.Observe(polarity)
}

// RecordDuration implements ScoreMetricsRecorder.RecordDuration
func (p *PrometheusScoreMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

// RecordFailure implements ScoreMetricsRecorder.RecordFailure
func (p *PrometheusScoreMetrics) RecordFailure() {
	p.failureCounter.Inc()
}
