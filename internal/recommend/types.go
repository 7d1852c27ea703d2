// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package recommend

// DefaultTopK is the number of suggestions returned when a caller does not choose.
const DefaultTopK = 10

// Request is one scoring request.
type Request struct {
	// Selected is the ordered list of symptoms the patient already reported.
	// Unknown IDs are ignored; duplicates count more than once.
	Selected []string

	// Gender is matched case-insensitively through the demographic key.
	Gender string

	// Age in years. Negative ages land in the youngest bucket.
	Age int

	// TopK caps the result length. Zero or negative yields no results.
	TopK int

	// Alpha and Beta override the model defaults when non-nil. They are
	// not clamped to [0, 1].
	Alpha *float64
	Beta  *float64
}

// ScoredCandidate is one ranked symptom with its score breakdown.
type ScoredCandidate struct {
	Symptom   string  `json:"symptom"`
	CoGlobal  float64 `json:"co_global"`
	CoDemo    float64 `json:"co_demo"`
	PriorDemo float64 `json:"prior_demo"`
	Final     float64 `json:"final"`
}

// Result is the full outcome of a scoring pass.
type Result struct {
	// Items is the ranked, truncated candidate list.
	Items []ScoredCandidate

	// DemographicKey is the table key derived from gender and age.
	DemographicKey string

	// Alpha and Beta are the weights actually used.
	Alpha float64
	Beta  float64

	// Selected is the sanitized selection, in request order.
	Selected []string

	// Candidates is the size of the scored pool before truncation.
	Candidates int

	// Fallback is true when the whole vocabulary was used as the pool.
	Fallback bool
}

// IDs returns the symptom IDs of r.Items in rank order.
func (r Result) IDs() []string {
	ids := make([]string, len(r.Items))
	for i, it := range r.Items {
		ids[i] = it.Symptom
	}
	return ids
}

// NeighborQuery selects a row of a conditional table. The demographic table
// is used only when both Gender and Age are set.
type NeighborQuery struct {
	Symptom string
	Gender  *string
	Age     *int
}

// Neighbor is one entry of a conditional-probability row.
type Neighbor struct {
	Symptom string  `json:"symptom"`
	Weight  float64 `json:"weight"`
}
