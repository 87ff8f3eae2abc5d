// Package metrics exposes Prometheus instrumentation for the detection API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DetectionRequests tracks detections by predicted language
	DetectionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langdetect_detections_total",
			Help: "The total number of language detections, labeled by predicted language",
		},
		[]string{"language"},
	)

	// DetectionConfidence tracks the confidence distribution of detections
	DetectionConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "langdetect_detection_confidence",
			Help:    "Confidence of language detections",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 9),
		},
	)

	// DetectionDuration tracks how long single detections take
	DetectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "langdetect_detection_duration_seconds",
			Help:    "Duration of single language detections",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BatchRequests tracks the number of batch detection requests
	BatchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "langdetect_batch_requests_total",
			Help: "The total number of batch detection requests",
		},
	)

	// BatchSize tracks the size distribution of batch requests
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "langdetect_batch_size",
			Help:    "Number of texts per batch detection request",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	)

	// TranslationRequests tracks translation requests by outcome
	TranslationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langdetect_translations_total",
			Help: "The total number of translation requests, labeled by outcome",
		},
		[]string{"outcome"},
	)

	// ModelReloads tracks model artifact reloads by outcome
	ModelReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langdetect_model_reloads_total",
			Help: "The total number of model artifact reloads, labeled by outcome",
		},
		[]string{"outcome"},
	)

	// CacheRequests tracks detection cache lookups by result
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langdetect_cache_requests_total",
			Help: "The total number of detection cache lookups, labeled by result",
		},
		[]string{"result"},
	)
)

// RecordDetection records a completed single detection
func RecordDetection(language string, confidence, seconds float64) {
	DetectionRequests.WithLabelValues(language).Inc()
	DetectionConfidence.Observe(confidence)
	DetectionDuration.Observe(seconds)
}

// RecordBatch records a completed batch detection
func RecordBatch(size int) {
	BatchRequests.Inc()
	BatchSize.Observe(float64(size))
}

// RecordTranslation records a translation request outcome
func RecordTranslation(ok bool) {
	TranslationRequests.WithLabelValues(outcome(ok)).Inc()
}

// RecordModelReload records a model reload outcome
func RecordModelReload(ok bool) {
	ModelReloads.WithLabelValues(outcome(ok)).Inc()
}

// RecordCacheResult records a detection cache lookup result
func RecordCacheResult(hit bool) {
	if hit {
		CacheRequests.WithLabelValues("hit").Inc()
		return
	}
	CacheRequests.WithLabelValues("miss").Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
