package metrics

import (
	"time"

	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "krw_dashboard"

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Dataset metrics
	datasetObservations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_observations",
			Help:      "Observations retained after reshaping the source table",
		},
	)

	datasetSeries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_series",
			Help:      "Series (rows) in the source table",
		},
	)

	datasetDroppedCells = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_dropped_cells_total",
			Help:      "Cells dropped while reshaping, by reason",
		},
		[]string{"reason"},
	)

	datasetLoadSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_load_seconds",
			Help:      "Time spent reading and reshaping the source table",
		},
	)

	datasetLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_load_failures_total",
			Help:      "Terminal dataset load failures, by reason",
		},
		[]string{"reason"},
	)

	// Selection metrics
	emptySelections = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_selections_total",
			Help:      "Selections that matched no observations",
		},
	)
)

// RecordDatasetLoad publishes the outcome of a successful load.
func RecordDatasetLoad(stats domain.ReshapeStats, elapsed time.Duration) {
	datasetObservations.Set(float64(stats.Observations))
	datasetSeries.Set(float64(stats.Series))
	datasetDroppedCells.WithLabelValues("rate").Add(float64(stats.DroppedRate))
	datasetDroppedCells.WithLabelValues("period").Add(float64(stats.DroppedPeriod))
	datasetLoadSeconds.Set(elapsed.Seconds())
}

// RecordDatasetLoadFailure counts a terminal load failure.
func RecordDatasetLoadFailure(reason string) {
	datasetLoadFailures.WithLabelValues(reason).Inc()
}

// RecordEmptySelection counts a selection with no matching observations.
func RecordEmptySelection() {
	emptySelections.Inc()
}
