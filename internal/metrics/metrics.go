// Package metrics defines the Prometheus collectors exported by the HTTP
// server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for the engine.
type Metrics struct {
	DocumentsIndexed prometheus.Gauge
	VocabularySize   prometheus.Gauge
	SearchesTotal    prometheus.Counter
	SearchDuration   prometheus.Histogram
	SearchResults    prometheus.Histogram
}

// New creates and registers all collectors on the given registerer. Pass
// prometheus.DefaultRegisterer outside of tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DocumentsIndexed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "questify_documents_indexed",
			Help: "Number of documents currently indexed.",
		}),
		VocabularySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "questify_vocabulary_size",
			Help: "Number of distinct terms in the vocabulary.",
		}),
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "questify_searches_total",
			Help: "Total number of search queries served.",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "questify_search_duration_seconds",
			Help:    "Search latency in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "questify_search_results_count",
			Help:    "Number of results returned per search.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}

	reg.MustRegister(
		m.DocumentsIndexed,
		m.VocabularySize,
		m.SearchesTotal,
		m.SearchDuration,
		m.SearchResults,
	)
	return m
}
