// Package metrics provides Prometheus metrics for the blog portal.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogportal"

var (
	// GenerationTotal counts article generation attempts by outcome.
	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_total",
			Help:      "Total number of article generation attempts",
		},
		[]string{"status"},
	)

	// GenerationDuration measures generation plus image resolution time.
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of article generation in seconds",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	// AssetSlotsTotal counts resolved image slots, split by fallback usage.
	AssetSlotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_slots_total",
			Help:      "Total number of resolved image slots",
		},
		[]string{"source"},
	)

	// VersionsTotal counts recorded article versions by reason.
	VersionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_versions_total",
			Help:      "Total number of recorded article versions",
		},
		[]string{"reason"},
	)

	// RenderCacheTotal counts rendered-article cache lookups.
	RenderCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_cache_total",
			Help:      "Total number of render cache lookups",
		},
		[]string{"result"},
	)
)

// RecordGeneration records one generation attempt.
func RecordGeneration(status string, seconds float64) {
	GenerationTotal.WithLabelValues(status).Inc()
	GenerationDuration.Observe(seconds)
}

// RecordAssetSlot records one resolved image slot.
func RecordAssetSlot(fallback bool) {
	source := "search"
	if fallback {
		source = "fallback"
	}
	AssetSlotsTotal.WithLabelValues(source).Inc()
}

// RecordVersion records a new article version.
func RecordVersion(reason string) {
	VersionsTotal.WithLabelValues(reason).Inc()
}

// RecordRenderCache records a render cache hit or miss.
func RecordRenderCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RenderCacheTotal.WithLabelValues(result).Inc()
}
