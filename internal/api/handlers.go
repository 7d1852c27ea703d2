// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"time"

	"github.com/tomtom215/symptomrec/internal/config"
	"github.com/tomtom215/symptomrec/internal/model"
	"github.com/tomtom215/symptomrec/internal/recommend"
)

// Handler holds the dependencies shared by all API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommend and explain
//   - handlers_catalog.go: rules, vocabulary and model summary
//   - handlers_eval.go: evaluation summary passthrough
//   - handlers_health.go: liveness
type Handler struct {
	scorer    *recommend.Scorer
	model     *model.Model
	recommend config.RecommendConfig
	eval      config.EvalConfig
	startTime time.Time
}

// NewHandler creates a handler serving scorer's model.
func NewHandler(scorer *recommend.Scorer, cfg *config.Config) *Handler {
	return &Handler{
		scorer:    scorer,
		model:     scorer.Model(),
		recommend: cfg.Recommend,
		eval:      cfg.Eval,
		startTime: time.Now(),
	}
}
