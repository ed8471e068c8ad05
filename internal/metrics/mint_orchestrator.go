package metrics

import (
	"time"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mintSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptocator",
		Subsystem: "mint_orchestrator",
		Name:      "submit_total",
		Help:      "Count of mint submissions.",
	}, []string{"collection", "kind", "status"})

	mintSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptocator",
		Subsystem: "mint_orchestrator",
		Name:      "submit_duration_seconds",
		Help:      "Duration from button press until the transaction hash is known.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"collection", "kind", "status"})

	mintConfirmationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptocator",
		Subsystem: "mint_orchestrator",
		Name:      "confirmation_total",
		Help:      "Count of finished confirmation waits by outcome.",
	}, []string{"collection", "kind", "outcome"})

	mintConfirmationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptocator",
		Subsystem: "mint_orchestrator",
		Name:      "confirmation_duration_seconds",
		Help:      "Duration of confirmation waits.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"collection", "kind", "outcome"})
)

// MintOrchestrator tracks metrics for mint submissions and their confirmations.
type MintOrchestrator struct{}

// NewMintOrchestrator constructs a MintOrchestrator metrics collector.
func NewMintOrchestrator() *MintOrchestrator {
	return &MintOrchestrator{}
}

// ObserveSubmit records a submit attempt outcome and duration.
func (m MintOrchestrator) ObserveSubmit(action model.Action, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mintSubmitTotal.WithLabelValues(string(action.Collection), string(action.Kind), status).Inc()
	mintSubmitDuration.WithLabelValues(string(action.Collection), string(action.Kind), status).
		Observe(time.Since(started).Seconds())
}

// ObserveConfirmation records how a confirmation wait ended.
func (m MintOrchestrator) ObserveConfirmation(action model.Action, outcome model.MintStatus, started time.Time) {
	mintConfirmationTotal.WithLabelValues(string(action.Collection), string(action.Kind), string(outcome)).Inc()
	mintConfirmationDuration.WithLabelValues(string(action.Collection), string(action.Kind), string(outcome)).
		Observe(time.Since(started).Seconds())
}
