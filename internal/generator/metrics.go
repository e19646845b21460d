package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postwright",
			Name:      "generations_total",
			Help:      "Total post generation requests",
		},
		[]string{"status"}, // "ok", "validation", "embedding", "generation", "corpus"
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "postwright",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end duration of the generation pipeline in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10), // 0.25s to ~2m
		},
	)

	referenceDocsCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "postwright",
			Name:      "reference_docs_count",
			Help:      "Number of reference documents feeding each generation",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	fallbackSamplesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "postwright",
			Name:      "fallback_samples_total",
			Help:      "Generations that fell back to diversity sampling",
		},
	)

	embedDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "postwright",
			Name:      "embed_duration_seconds",
			Help:      "Duration of topic embedding calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
