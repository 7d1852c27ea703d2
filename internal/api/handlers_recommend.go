// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/symptomrec/internal/logging"
	"github.com/tomtom215/symptomrec/internal/metrics"
	"github.com/tomtom215/symptomrec/internal/recommend"
	"github.com/tomtom215/symptomrec/internal/validation"
)

// RecommendRequest is the body of the recommend and explain endpoints.
type RecommendRequest struct {
	Gender           *string  `json:"gender" validate:"required" example:"female"`
	Age              *int     `json:"age" validate:"required" example:"26"`
	SelectedSymptoms []string `json:"selected_symptoms" validate:"required" example:"fever"`
	TopK             *int     `json:"top_k,omitempty" validate:"omitempty,gte=0" example:"10"`
	Alpha            *float64 `json:"alpha,omitempty" example:"0.7"`
	Beta             *float64 `json:"beta,omitempty" example:"0.6"`
}

// RecommendResponse is the data payload of POST /api/v1/recommend.
type RecommendResponse struct {
	Recommendations []string `json:"recommendations"`
}

// ExplainResponse is the data payload of POST /api/v1/recommend/explain.
type ExplainResponse struct {
	Items []recommend.ScoredCandidate `json:"items"`
}

// Recommend returns ranked follow-up symptoms.
//
// @Summary Recommend follow-up symptoms
// @Description Ranks symptoms that co-occur with the selected ones, blending global and demographic statistics with the demographic prior.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Patient demographics and selected symptoms"
// @Success 200 {object} APIResponse{data=RecommendResponse}
// @Failure 400 {object} APIResponse "Malformed or invalid request"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res, ok := h.score(w, r, rw, "recommend")
	if !ok {
		return
	}
	rw.Success(RecommendResponse{Recommendations: res.IDs()})
}

// Explain returns the ranking with the per-candidate score breakdown.
//
// @Summary Explain recommendation scores
// @Description Same ranking as /recommend with co_global, co_demo, prior_demo and final for each item.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Patient demographics and selected symptoms"
// @Success 200 {object} APIResponse{data=ExplainResponse}
// @Failure 400 {object} APIResponse "Malformed or invalid request"
// @Router /recommend/explain [post]
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	res, ok := h.score(w, r, rw, "explain")
	if !ok {
		return
	}
	rw.Success(ExplainResponse{Items: res.Items})
}

// score decodes and validates the body, runs the scorer and records metrics.
// On failure it has already written the error response.
func (h *Handler) score(w http.ResponseWriter, r *http.Request, rw *ResponseWriter, operation string) (recommend.Result, bool) {
	var body RecommendRequest
	if err := decodeJSONBody(w, r, &body); err != nil {
		msg := "Invalid JSON body: " + err.Error()
		if errors.Is(err, ErrEmptyBody) {
			msg = "Request body is required"
		}
		rw.BadRequest(msg)
		return recommend.Result{}, false
	}

	if verr := validation.ValidateStruct(&body); verr != nil {
		writeValidationError(rw, verr)
		return recommend.Result{}, false
	}

	req, verr := h.toScorerRequest(&body)
	if verr != nil {
		writeValidationError(rw, verr)
		return recommend.Result{}, false
	}

	start := time.Now()
	res := h.scorer.Score(req)
	elapsed := time.Since(start)

	dropped := len(req.Selected) - len(res.Selected)
	metrics.RecordScoring(operation, res.Candidates, len(res.Items), dropped, res.Fallback, elapsed)

	logging.Ctx(r.Context()).Debug().
		Str("operation", operation).
		Str("demographic", sanitizeLogValue(res.DemographicKey)).
		Int("dropped", dropped).
		Int("returned", len(res.Items)).
		Dur("duration", elapsed).
		Msg("Scored request")

	return res, true
}

// toScorerRequest applies the configured top_k default and ceiling.
func (h *Handler) toScorerRequest(body *RecommendRequest) (recommend.Request, *validation.RequestValidationError) {
	topK := h.recommend.DefaultTopK
	if body.TopK != nil {
		topK = *body.TopK
	}
	if h.recommend.MaxTopK > 0 && topK > h.recommend.MaxTopK {
		limit := strconv.Itoa(h.recommend.MaxTopK)
		return recommend.Request{}, validation.NewFieldError(
			"top_k", "lte", limit, topK,
			"top_k must be less than or equal to "+limit,
		)
	}

	return recommend.Request{
		Selected: body.SelectedSymptoms,
		Gender:   *body.Gender,
		Age:      *body.Age,
		TopK:     topK,
		Alpha:    body.Alpha,
		Beta:     body.Beta,
	}, nil
}
