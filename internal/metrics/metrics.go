package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup kind label values.
const (
	KindPrimary = "primary"
	KindPeer    = "peer"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pecheck_lookups_total",
			Help: "Total article lookups by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	verdictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pecheck_verdicts_total",
			Help: "Total classifier verdicts by label",
		},
		[]string{"verdict"},
	)

	checkDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pecheck_check_duration_seconds",
			Help:    "End-to-end duration of one ownership check",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	initOnce sync.Once
)

// Init registers all collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(lookupsTotal, verdictsTotal, checkDuration)
	})
}

// RecordLookup counts one article lookup by kind and outcome.
func RecordLookup(kind, outcome string) {
	lookupsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordVerdict counts one classifier verdict.
func RecordVerdict(peOwned bool) {
	label := "negative"
	if peOwned {
		label = "positive"
	}
	verdictsTotal.WithLabelValues(label).Inc()
}

// ObserveCheckDuration records the wall time of a complete check.
func ObserveCheckDuration(d time.Duration) {
	checkDuration.Observe(d.Seconds())
}
