// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"net/http"

	"github.com/tomtom215/symptomrec/internal/evaluation"
	"github.com/tomtom215/symptomrec/internal/metrics"
)

// EvalMetricsResponse is the data payload of GET /api/v1/eval/metrics.
type EvalMetricsResponse struct {
	Metrics map[string]any `json:"metrics"`
	Info    string         `json:"info,omitempty"`
}

// EvalMetrics returns the first row of the offline evaluation summary.
//
// @Summary Offline evaluation metrics
// @Description First data row of the evaluation CSV. Numeric values are returned as numbers, others as strings. A missing file is not an error.
// @Tags Evaluation
// @Produce json
// @Success 200 {object} APIResponse{data=EvalMetricsResponse}
// @Failure 500 {object} APIResponse "Summary exists but could not be read"
// @Router /eval/metrics [get]
func (h *Handler) EvalMetrics(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	summary, err := evaluation.ReadSummary(h.eval.SummaryPath)
	if err != nil {
		metrics.RecordEvalRead("error")
		rw.InternalError("Failed to read evaluation summary", err)
		return
	}

	if !summary.Found {
		metrics.RecordEvalRead("not_found")
		rw.Success(EvalMetricsResponse{Metrics: summary.Metrics, Info: summary.NotFoundInfo()})
		return
	}

	metrics.RecordEvalRead("found")
	rw.Success(EvalMetricsResponse{Metrics: summary.Metrics})
}
