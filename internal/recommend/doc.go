// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package recommend ranks follow-up symptoms for a patient profile.
//
// # Scoring
//
// Given the symptoms already selected (S), a demographic key derived from
// gender and age, and blend weights alpha and beta, each candidate c is
// scored as
//
//	co_global(c) = sum over s in S of Global(s, c)    / max(1, |S|)
//	co_demo(c)   = sum over s in S of Demo(key, s, c) / max(1, |S|)
//	prior(c)     = Prior(key, c)
//	final(c)     = alpha*(beta*co_demo + (1-beta)*co_global) + (1-alpha)*prior
//
// Unknown selected symptoms are dropped before scoring; duplicates are kept
// and weigh the means by multiplicity. Candidates are the vocabulary members
// that co-occur with any selected symptom, globally or within the
// demographic. Neighbors outside the vocabulary never become candidates, so a
// selection whose only neighbors are unknown IDs counts as having none. With
// no such co-occurrence the whole vocabulary is ranked, so a first visit or
// an unseen demographic still gets prior-driven suggestions. Selected
// symptoms are never recommended back.
//
// Ranking is final descending, ties broken by symptom ID ascending, which
// keeps results reproducible across runs.
//
// # Usage
//
//	scorer := recommend.NewScorer(m, logger)
//	ids := scorer.Recommend(recommend.Request{
//	    Selected: []string{"fever"},
//	    Gender:   "f",
//	    Age:      25,
//	    TopK:     recommend.DefaultTopK,
//	})
//
// # Thread Safety
//
// A Scorer holds only the immutable model. Every call allocates its own
// working state, so all methods are safe for concurrent use without locks.
package recommend
