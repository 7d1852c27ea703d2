// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"net/http"

	"github.com/tomtom215/symptomrec/internal/recommend"
)

// RulesResponse is the data payload of GET /api/v1/rules.
type RulesResponse struct {
	Symptom   string               `json:"symptom"`
	Neighbors []recommend.Neighbor `json:"neighbors"`
}

// VocabResponse is the data payload of GET /api/v1/vocab.
type VocabResponse struct {
	Count  int              `json:"count"`
	Items  []string         `json:"items"`
	Counts map[string]int64 `json:"counts,omitempty"`
}

// Rules lists the conditional neighbors of one symptom.
//
// @Summary Symptom neighbors
// @Description Returns P(B|symptom) for every neighbor B, heaviest first. Demographic-specific when both gender and age are given, global otherwise.
// @Tags Catalog
// @Produce json
// @Param symptom query string true "Symptom ID"
// @Param gender query string false "Gender"
// @Param age query int false "Age in years"
// @Success 200 {object} APIResponse{data=RulesResponse}
// @Failure 400 {object} APIResponse "Missing symptom or non-integer age"
// @Router /rules [get]
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := r.URL.Query()
	symptom := q.Get("symptom")
	if symptom == "" {
		rw.ValidationError("symptom is required", map[string]any{"field": "symptom", "tag": "required"})
		return
	}

	age, _, err := parseOptionalInt(r, "age")
	if err != nil {
		rw.ValidationError(err.Error(), map[string]any{"field": "age", "tag": "int"})
		return
	}

	query := recommend.NeighborQuery{Symptom: symptom, Age: age}
	if q.Has("gender") {
		gender := q.Get("gender")
		query.Gender = &gender
	}

	rw.Success(RulesResponse{
		Symptom:   symptom,
		Neighbors: h.scorer.Neighbors(query),
	})
}

// Vocab lists vocabulary symptoms, optionally filtered by substring.
//
// @Summary Symptom vocabulary
// @Description Sorted vocabulary. q keeps IDs containing q (case-sensitive); with_counts adds observed frequencies.
// @Tags Catalog
// @Produce json
// @Param q query string false "Substring filter"
// @Param with_counts query bool false "Include observation counts"
// @Success 200 {object} APIResponse{data=VocabResponse}
// @Failure 400 {object} APIResponse "Invalid with_counts"
// @Router /vocab [get]
func (h *Handler) Vocab(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	withCounts, err := parseBoolParam(r, "with_counts")
	if err != nil {
		rw.ValidationError(err.Error(), map[string]any{"field": "with_counts", "tag": "boolean"})
		return
	}

	items := h.model.Vocabulary(r.URL.Query().Get("q"))
	resp := VocabResponse{Count: len(items), Items: items}
	if withCounts {
		resp.Counts = make(map[string]int64, len(items))
		for _, s := range items {
			resp.Counts[s] = h.model.Count(s)
		}
	}
	rw.Success(resp)
}

// ModelSummary describes the loaded model.
//
// @Summary Loaded model summary
// @Description Vocabulary size, demographic keys, blend defaults, total observations and load time.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=model.Summary}
// @Router /model [get]
func (h *Handler) ModelSummary(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.model.Summary())
}
