// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package metrics defines the Prometheus collectors exported at /metrics.
//
// Collectors are registered on the default registry through promauto; the
// Record* helpers keep label handling in one place.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of scoring passes by operation",
		},
		[]string{"operation"}, // "recommend", "explain"
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidate_pool_size",
			Help:    "Number of candidates scored per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	RecommendReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_returned_items",
			Help:    "Number of items returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50, 100},
		},
	)

	RecommendFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_vocabulary_fallback_total",
			Help: "Requests that ranked the whole vocabulary for lack of co-occurrence signal",
		},
	)

	RecommendDroppedSymptoms = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_unknown_symptoms_total",
			Help: "Selected symptoms ignored because they are not in the vocabulary",
		},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_scoring_duration_seconds",
			Help:    "Time spent scoring candidates",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		},
		[]string{"operation"},
	)

	// Model Metrics
	ModelVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_size",
			Help: "Number of symptoms in the loaded model",
		},
	)

	ModelDemographics = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_demographic_keys",
			Help: "Number of demographic keys in the loaded model",
		},
	)

	ModelLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_load_duration_seconds",
			Help: "Time taken to load the model at startup",
		},
	)

	ModelLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_loaded_timestamp",
			Help: "Unix timestamp of the model load",
		},
	)

	// Evaluation passthrough
	EvalSummaryReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eval_summary_reads_total",
			Help: "Reads of the offline evaluation summary by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "error"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordScoring records the outcome of one scoring pass.
func RecordScoring(operation string, candidates, returned, dropped int, fallback bool, duration time.Duration) {
	RecommendRequests.WithLabelValues(operation).Inc()
	RecommendCandidates.Observe(float64(candidates))
	RecommendReturned.Observe(float64(returned))
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if dropped > 0 {
		RecommendDroppedSymptoms.Add(float64(dropped))
	}
	if fallback {
		RecommendFallbacks.Inc()
	}
}

// RecordModelLoad publishes model shape and load timing.
func RecordModelLoad(vocabulary, demographics int, duration time.Duration, loadedAt time.Time) {
	ModelVocabularySize.Set(float64(vocabulary))
	ModelDemographics.Set(float64(demographics))
	ModelLoadDuration.Set(duration.Seconds())
	ModelLoadedTimestamp.Set(float64(loadedAt.Unix()))
}

// RecordEvalRead counts an evaluation summary read.
func RecordEvalRead(outcome string) {
	EvalSummaryReads.WithLabelValues(outcome).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
