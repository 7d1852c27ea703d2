// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package model holds the precomputed symptom co-occurrence model.
//
// A Model is built once (usually from a file via Load) and never mutated
// afterwards, so it can be shared by any number of goroutines without
// locking. All table lookups are sparse: a missing entry at any level reads
// as 0.0 rather than an error.
//
// Tables:
//
//   - Global(a, b): P(b | a) pooled across demographics
//   - Demo(key, a, b): P(b | a) within one demographic key
//   - Prior(key, c): marginal prior of c within one demographic key
//
// Demographic keys have the form "<gender>|<age bucket>", for example
// "f|20-34"; see the recommend package for how they are derived.
package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Sentinel errors returned by New and Load.
var (
	ErrMissingVocabulary    = errors.New("model has no vocabulary")
	ErrMissingBlendDefaults = errors.New("model notes are missing alpha_default or beta_default")
	ErrBlendOutOfRange      = errors.New("model blend default outside [0, 1]")
)

// Document is the on-disk shape of a model file.
type Document struct {
	Vocab          []string                                 `json:"vocab"`
	SymCounts      map[string]int64                         `json:"sym_counts"`
	CondProbGlobal map[string]map[string]float64            `json:"cond_prob_global"`
	CondProbDemo   map[string]map[string]map[string]float64 `json:"cond_prob_demo"`
	DemoPrior      map[string]map[string]float64            `json:"demo_prior"`
	Notes          Notes                                    `json:"notes"`
}

// Notes carries training metadata. Only the blend defaults are required.
type Notes struct {
	AlphaDefault *float64 `json:"alpha_default"`
	BetaDefault  *float64 `json:"beta_default"`
}

// Model is the immutable in-memory co-occurrence model.
type Model struct {
	vocab       map[string]struct{}
	vocabSorted []string
	counts      map[string]int64
	global      map[string]map[string]float64
	demo        map[string]map[string]map[string]float64
	prior       map[string]map[string]float64

	alphaDefault float64
	betaDefault  float64

	source   string
	loadedAt time.Time
}

// New validates doc and builds a Model from it. The model takes ownership of
// the maps in doc; callers must not modify them afterwards.
//
//nolint:gocritic // hugeParam: doc is consumed once at startup
func New(doc Document) (*Model, error) {
	if doc.Vocab == nil {
		return nil, ErrMissingVocabulary
	}
	if doc.Notes.AlphaDefault == nil || doc.Notes.BetaDefault == nil {
		return nil, ErrMissingBlendDefaults
	}
	alpha, beta := *doc.Notes.AlphaDefault, *doc.Notes.BetaDefault
	if !inUnitInterval(alpha) {
		return nil, fmt.Errorf("%w: alpha_default=%v", ErrBlendOutOfRange, alpha)
	}
	if !inUnitInterval(beta) {
		return nil, fmt.Errorf("%w: beta_default=%v", ErrBlendOutOfRange, beta)
	}

	vocab := make(map[string]struct{}, len(doc.Vocab))
	for _, s := range doc.Vocab {
		vocab[s] = struct{}{}
	}
	sorted := make([]string, 0, len(vocab))
	for s := range vocab {
		sorted = append(sorted, s)
	}
	sort.Strings(sorted)

	m := &Model{
		vocab:        vocab,
		vocabSorted:  sorted,
		counts:       doc.SymCounts,
		global:       doc.CondProbGlobal,
		demo:         doc.CondProbDemo,
		prior:        doc.DemoPrior,
		alphaDefault: alpha,
		betaDefault:  beta,
		loadedAt:     time.Now().UTC(),
	}
	if m.counts == nil {
		m.counts = map[string]int64{}
	}
	if m.global == nil {
		m.global = map[string]map[string]float64{}
	}
	if m.demo == nil {
		m.demo = map[string]map[string]map[string]float64{}
	}
	if m.prior == nil {
		m.prior = map[string]map[string]float64{}
	}
	return m, nil
}

func inUnitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Contains reports whether s is in the vocabulary.
func (m *Model) Contains(s string) bool {
	_, ok := m.vocab[s]
	return ok
}

// VocabularySize returns the number of distinct symptoms.
func (m *Model) VocabularySize() int {
	return len(m.vocabSorted)
}

// Symptoms returns the whole vocabulary in ascending order. The slice is
// shared; callers must not modify it.
func (m *Model) Symptoms() []string {
	return m.vocabSorted
}

// Vocabulary returns the sorted vocabulary, keeping only entries that contain
// q when q is non-empty. The match is a case-sensitive substring match.
func (m *Model) Vocabulary(q string) []string {
	if q == "" {
		out := make([]string, len(m.vocabSorted))
		copy(out, m.vocabSorted)
		return out
	}
	out := make([]string, 0)
	for _, s := range m.vocabSorted {
		if strings.Contains(s, q) {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the observed frequency of s, or 0.
func (m *Model) Count(s string) int64 {
	return m.counts[s]
}

// Global returns P(b | a) across all demographics.
func (m *Model) Global(a, b string) float64 {
	return m.global[a][b]
}

// GlobalRow returns every b with a recorded P(b | a). Read only.
func (m *Model) GlobalRow(a string) map[string]float64 {
	return m.global[a]
}

// Demo returns P(b | a) within demographic key.
func (m *Model) Demo(key, a, b string) float64 {
	return m.demo[key][a][b]
}

// DemoRow returns every b with a recorded P(b | a) within key. Read only.
func (m *Model) DemoRow(key, a string) map[string]float64 {
	return m.demo[key][a]
}

// Prior returns the marginal prior of c within demographic key.
func (m *Model) Prior(key, c string) float64 {
	return m.prior[key][c]
}

// AlphaDefault is the default weight of the co-occurrence signal against the prior.
func (m *Model) AlphaDefault() float64 { return m.alphaDefault }

// BetaDefault is the default weight of the demographic table against the global one.
func (m *Model) BetaDefault() float64 { return m.betaDefault }

// Source is the path the model was loaded from, if any.
func (m *Model) Source() string { return m.source }

// LoadedAt is when the model was built.
func (m *Model) LoadedAt() time.Time { return m.loadedAt }

// Summary describes a loaded model.
type Summary struct {
	Source            string    `json:"source,omitempty"`
	VocabularySize    int       `json:"vocabulary_size"`
	GlobalRows        int       `json:"global_rows"`
	Demographics      []string  `json:"demographics"`
	TotalObservations int64     `json:"total_observations"`
	AlphaDefault      float64   `json:"alpha_default"`
	BetaDefault       float64   `json:"beta_default"`
	LoadedAt          time.Time `json:"loaded_at"`
}

// Summary returns counts and defaults describing the model. Demographic keys
// are the union of the conditional and prior tables, sorted.
func (m *Model) Summary() Summary {
	keys := make(map[string]struct{}, len(m.demo)+len(m.prior))
	for k := range m.demo {
		keys[k] = struct{}{}
	}
	for k := range m.prior {
		keys[k] = struct{}{}
	}
	demos := make([]string, 0, len(keys))
	for k := range keys {
		demos = append(demos, k)
	}
	sort.Strings(demos)

	var total int64
	for _, c := range m.counts {
		total += c
	}

	return Summary{
		Source:            m.source,
		VocabularySize:    len(m.vocabSorted),
		GlobalRows:        len(m.global),
		Demographics:      demos,
		TotalObservations: total,
		AlphaDefault:      m.alphaDefault,
		BetaDefault:       m.betaDefault,
		LoadedAt:          m.loadedAt,
	}
}
