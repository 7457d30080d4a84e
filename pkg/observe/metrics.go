package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for PredictRequestsTotal and PredictDuration.
const (
	OutcomeSuccess     = "success"
	OutcomeUnsupported = "unsupported_city"
	OutcomeNotFound    = "not_found"
	OutcomeSchema      = "schema_error"
	OutcomeFailure     = "failure"
)

var (
	// PredictRequestsTotal counts /predict calls by region and outcome.
	PredictRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predict_requests_total",
			Help: "Total number of seasonal predict requests",
		},
		[]string{"region", "outcome"},
	)

	// PredictDuration tracks end-to-end handler latency.
	PredictDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "predict_duration_seconds",
			Help:    "Duration of seasonal predict requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// ClimateTableRows is the row count of the last table loaded per region.
	ClimateTableRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "climate_table_rows",
			Help: "Number of observations in the most recently loaded climate CSV",
		},
		[]string{"region"},
	)
)
