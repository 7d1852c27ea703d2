// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package recommend

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/symptomrec/internal/model"
)

// Scorer ranks candidate symptoms against an immutable model.
type Scorer struct {
	model  *model.Model
	logger zerolog.Logger
}

// NewScorer creates a scorer over m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(m *model.Model, logger zerolog.Logger) *Scorer {
	return &Scorer{
		model:  m,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// Model returns the model the scorer reads from.
func (s *Scorer) Model() *model.Model {
	return s.model
}

// Recommend returns up to req.TopK symptom IDs, best first.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Scorer) Recommend(req Request) []string {
	return s.Score(req).IDs()
}

// Explain returns the same ranking as Recommend with the score breakdown.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Scorer) Explain(req Request) []ScoredCandidate {
	return s.Score(req).Items
}

// Score runs one scoring pass and reports how the pool was built.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Scorer) Score(req Request) Result {
	res := Result{
		DemographicKey: DemographicKey(req.Gender, req.Age),
		Alpha:          s.model.AlphaDefault(),
		Beta:           s.model.BetaDefault(),
	}
	if req.Alpha != nil {
		res.Alpha = *req.Alpha
	}
	if req.Beta != nil {
		res.Beta = *req.Beta
	}

	res.Selected = s.sanitize(req.Selected)
	pool, fallback := s.candidates(res.Selected, res.DemographicKey)
	res.Fallback = fallback

	items := make([]ScoredCandidate, 0, len(pool))
	for _, c := range pool {
		items = append(items, s.scoreCandidate(c, res.Selected, res.DemographicKey, res.Alpha, res.Beta))
	}
	res.Candidates = len(items)

	rank(items)

	k := req.TopK
	if k < 0 {
		k = 0
	}
	if len(items) > k {
		items = items[:k]
	}
	res.Items = items

	s.logger.Debug().
		Str("demographic", res.DemographicKey).
		Int("selected", len(res.Selected)).
		Int("candidates", res.Candidates).
		Bool("fallback", res.Fallback).
		Int("returned", len(res.Items)).
		Msg("scored candidates")

	return res
}

// sanitize drops IDs outside the vocabulary. Order and duplicates are kept.
func (s *Scorer) sanitize(selected []string) []string {
	out := make([]string, 0, len(selected))
	for _, id := range selected {
		if s.model.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// candidates builds the scoring pool for the sanitized selection. The pool
// holds vocabulary members that co-occur with a selected symptom, globally
// or within key. An empty pool falls back to the whole vocabulary. Selected
// symptoms are removed in both cases. The bool reports the fallback.
func (s *Scorer) candidates(selected []string, key string) ([]string, bool) {
	chosen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	pool := make(map[string]struct{})
	for _, id := range selected {
		for c := range s.model.GlobalRow(id) {
			if s.model.Contains(c) {
				pool[c] = struct{}{}
			}
		}
		for c := range s.model.DemoRow(key, id) {
			if s.model.Contains(c) {
				pool[c] = struct{}{}
			}
		}
	}

	if len(pool) == 0 {
		out := make([]string, 0, s.model.VocabularySize())
		for _, c := range s.model.Symptoms() {
			if _, skip := chosen[c]; !skip {
				out = append(out, c)
			}
		}
		return out, true
	}

	out := make([]string, 0, len(pool))
	for c := range pool {
		if _, skip := chosen[c]; !skip {
			out = append(out, c)
		}
	}
	return out, false
}

func (s *Scorer) scoreCandidate(c string, selected []string, key string, alpha, beta float64) ScoredCandidate {
	n := float64(max(1, len(selected)))

	var sumGlobal, sumDemo float64
	for _, id := range selected {
		sumGlobal += s.model.Global(id, c)
		sumDemo += s.model.Demo(key, id, c)
	}

	sc := ScoredCandidate{
		Symptom:   c,
		CoGlobal:  sumGlobal / n,
		CoDemo:    sumDemo / n,
		PriorDemo: s.model.Prior(key, c),
	}
	sc.Final = alpha*(beta*sc.CoDemo+(1-beta)*sc.CoGlobal) + (1-alpha)*sc.PriorDemo
	return sc
}

// rank orders by Final descending, then Symptom ascending. NaN scores sort last.
func rank(items []ScoredCandidate) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		aNaN, bNaN := math.IsNaN(a.Final), math.IsNaN(b.Final)
		if aNaN != bNaN {
			return bNaN
		}
		if !aNaN && a.Final != b.Final {
			return a.Final > b.Final
		}
		return a.Symptom < b.Symptom
	})
}

// Neighbors returns the conditional-probability row for q.Symptom, heaviest
// first with ties by ID. The symptom is not checked against the vocabulary;
// an unknown symptom yields an empty list.
func (s *Scorer) Neighbors(q NeighborQuery) []Neighbor {
	var row map[string]float64
	if q.Gender != nil && q.Age != nil {
		row = s.model.DemoRow(DemographicKey(*q.Gender, *q.Age), q.Symptom)
	} else {
		row = s.model.GlobalRow(q.Symptom)
	}

	out := make([]Neighbor, 0, len(row))
	for id, w := range row {
		out = append(out, Neighbor{Symptom: id, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Symptom < out[j].Symptom
	})
	return out
}
