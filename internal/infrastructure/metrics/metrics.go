package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewCounter builds the shared counter vector. The result label carries
// upload pipeline outcomes (succeeded, rejected, cancelled, orphaned),
// retention events and request totals.
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assethistory",
			Name:      "general_counters",
			Help:      "Upload, retention and request outcome counters.",
		},
		[]string{"result"})
}
