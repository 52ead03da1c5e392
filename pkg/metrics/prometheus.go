package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	refreshTotal    *prometheus.CounterVec
	refreshDuration *prometheus.HistogramVec
	lastRefresh     *prometheus.GaugeVec
	upstreamErrors  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		refreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metricpull_panel_refresh_total",
				Help: "Total number of panel refresh batches by result",
			},
			[]string{"panel", "result"},
		),
		refreshDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "metricpull_panel_refresh_duration_seconds",
				Help:    "Duration of panel refresh batches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"panel"},
		),
		lastRefresh: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "metricpull_panel_last_refresh_timestamp_seconds",
				Help: "Unix timestamp of the last successful panel refresh",
			},
			[]string{"panel"},
		),
		upstreamErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metricpull_upstream_errors_total",
				Help: "Total number of upstream API errors by kind",
			},
			[]string{"kind"},
		),
	}
}

// RecordRefresh records one finished refresh batch.
func (r *Recorder) RecordRefresh(panel string, success bool, seconds float64) {
	result := "ok"
	if !success {
		result = "error"
	}
	r.refreshTotal.WithLabelValues(panel, result).Inc()
	r.refreshDuration.WithLabelValues(panel).Observe(seconds)
}

// RecordLastRefresh records the wall-clock time of a successful refresh.
func (r *Recorder) RecordLastRefresh(panel string, unixSeconds float64) {
	r.lastRefresh.WithLabelValues(panel).Set(unixSeconds)
}

// RecordUpstreamError records an upstream API error occurrence.
func (r *Recorder) RecordUpstreamError(kind string) {
	r.upstreamErrors.WithLabelValues(kind).Inc()
}
