package metrics

import (
	"time"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statsFieldReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptocator",
		Subsystem: "stats_loader",
		Name:      "field_reads_total",
		Help:      "Count of contract field reads by resulting state.",
	}, []string{"collection", "field", "state"})

	statsLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptocator",
		Subsystem: "stats_loader",
		Name:      "load_duration_seconds",
		Help:      "Duration of loading all fields of a collection.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"collection"})
)

// StatsLoader tracks metrics for collection stats loading.
type StatsLoader struct{}

// NewStatsLoader constructs a StatsLoader metrics collector.
func NewStatsLoader() *StatsLoader {
	return &StatsLoader{}
}

// ObserveField records the state a single field read ended in.
func (m StatsLoader) ObserveField(collection model.Collection, field string, state model.FieldState) {
	statsFieldReadsTotal.WithLabelValues(string(collection), field, state.String()).Inc()
}

// ObserveLoad records the duration of a full collection load.
func (m StatsLoader) ObserveLoad(collection model.Collection, started time.Time) {
	statsLoadDuration.WithLabelValues(string(collection)).Observe(time.Since(started).Seconds())
}
