// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package recommend

import (
	"math"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/symptomrec/internal/model"
)

const tolerance = 1e-9

func f64(v float64) *float64 { return &v }
func str(v string) *string    { return &v }
func intp(v int) *int         { return &v }

// feverModel is the three-symptom model used throughout the scoring docs.
func feverModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.Document{
		Vocab: []string{"fever", "cough", "rash"},
		CondProbGlobal: map[string]map[string]float64{
			"fever": {"cough": 0.6, "rash": 0.1},
		},
		CondProbDemo: map[string]map[string]map[string]float64{},
		DemoPrior: map[string]map[string]float64{
			"f|20-34": {"cough": 0.3, "rash": 0.05},
		},
		Notes: model.Notes{AlphaDefault: f64(0.5), BetaDefault: f64(0.5)},
	})
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}
	return m
}

// clinicModel has demographic tables, an out-of-vocabulary neighbor and ties.
func clinicModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.New(model.Document{
		Vocab:     []string{"fever", "cough", "rash", "headache", "nausea", "fatigue"},
		SymCounts: map[string]int64{"fever": 100, "cough": 50},
		CondProbGlobal: map[string]map[string]float64{
			"fever":    {"cough": 0.6, "rash": 0.1, "ghost": 0.9},
			"cough":    {"fever": 0.5, "fatigue": 0.2},
			"headache": {"nausea": 0.4},
		},
		CondProbDemo: map[string]map[string]map[string]float64{
			"m|35-49": {
				"fever": {"headache": 0.3, "cough": 0.2},
				"cough": {"fatigue": 0.4},
			},
		},
		DemoPrior: map[string]map[string]float64{
			"m|35-49": {"fatigue": 0.2, "nausea": 0.2, "rash": 0.05},
			"f|20-34": {"cough": 0.3},
		},
		Notes: model.Notes{AlphaDefault: f64(0.7), BetaDefault: f64(0.6)},
	})
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}
	return m
}

func TestScorer_FeverScenario(t *testing.T) {
	t.Parallel()

	s := NewScorer(feverModel(t), zerolog.Nop())
	req := Request{Selected: []string{"fever"}, Gender: "f", Age: 25, TopK: 10, Alpha: f64(0.5), Beta: f64(0.5)}

	if got := s.Recommend(req); !reflect.DeepEqual(got, []string{"cough", "rash"}) {
		t.Fatalf("Recommend() = %v, want [cough rash]", got)
	}

	items := s.Explain(req)
	if len(items) != 2 {
		t.Fatalf("Explain() returned %d items, want 2", len(items))
	}
	want := []ScoredCandidate{
		{Symptom: "cough", CoGlobal: 0.6, CoDemo: 0, PriorDemo: 0.3, Final: 0.3},
		{Symptom: "rash", CoGlobal: 0.1, CoDemo: 0, PriorDemo: 0.05, Final: 0.05},
	}
	for i, w := range want {
		got := items[i]
		if got.Symptom != w.Symptom {
			t.Errorf("item %d symptom = %q, want %q", i, got.Symptom, w.Symptom)
		}
		if math.Abs(got.CoGlobal-w.CoGlobal) > tolerance ||
			math.Abs(got.CoDemo-w.CoDemo) > tolerance ||
			math.Abs(got.PriorDemo-w.PriorDemo) > tolerance ||
			math.Abs(got.Final-w.Final) > tolerance {
			t.Errorf("item %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestScorer_DefaultsFromModel(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	res := s.Score(Request{Selected: []string{"fever"}, Gender: "M", Age: 40, TopK: 3})

	if res.Alpha != 0.7 || res.Beta != 0.6 {
		t.Errorf("weights = (%v, %v), want model defaults (0.7, 0.6)", res.Alpha, res.Beta)
	}
	if res.DemographicKey != "m|35-49" {
		t.Errorf("DemographicKey = %q, want m|35-49", res.DemographicKey)
	}
	if res.Fallback {
		t.Error("Fallback should be false when co-occurrence exists")
	}
}

func TestScorer_TopKBoundaries(t *testing.T) {
	t.Parallel()

	s := NewScorer(feverModel(t), zerolog.Nop())
	base := Request{Selected: []string{"fever"}, Gender: "f", Age: 25}

	tests := []struct {
		name string
		topK int
		want []string
	}{
		{"zero", 0, []string{}},
		{"negative", -3, []string{}},
		{"one", 1, []string{"cough"}},
		{"exact", 2, []string{"cough", "rash"}},
		{"larger than pool", 50, []string{"cough", "rash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := base
			req.TopK = tt.topK
			got := s.Recommend(req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend(top_k=%d) = %v, want %v", tt.topK, got, tt.want)
			}
		})
	}
}

func TestScorer_Fallback(t *testing.T) {
	t.Parallel()

	m := clinicModel(t)
	s := NewScorer(m, zerolog.Nop())

	tests := []struct {
		name     string
		selected []string
		wantPool []string
	}{
		{"empty selection", nil, m.Symptoms()},
		{"only unknown", []string{"ghost", "FEVER"}, m.Symptoms()},
		{"known without neighbors", []string{"rash"}, []string{"cough", "fatigue", "fever", "headache", "nausea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := s.Score(Request{Selected: tt.selected, Gender: "m", Age: 40, TopK: 100})
			if !res.Fallback {
				t.Fatal("expected vocabulary fallback")
			}
			got := res.IDs()
			sort.Strings(got)
			want := append([]string(nil), tt.wantPool...)
			sort.Strings(want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("pool = %v, want %v", got, want)
			}
			if res.Candidates != len(want) {
				t.Errorf("Candidates = %d, want %d", res.Candidates, len(want))
			}
		})
	}
}

func TestScorer_OutOfVocabularyNeighborsFallBack(t *testing.T) {
	t.Parallel()

	m, err := model.New(model.Document{
		Vocab: []string{"fever", "cough", "rash"},
		CondProbGlobal: map[string]map[string]float64{
			"rash": {"ghost": 0.9},
		},
		CondProbDemo: map[string]map[string]map[string]float64{
			"f|20-34": {"rash": {"phantom": 0.8}},
		},
		DemoPrior: map[string]map[string]float64{
			"f|20-34": {"cough": 0.3, "fever": 0.1},
		},
		Notes: model.Notes{AlphaDefault: f64(0.5), BetaDefault: f64(0.5)},
	})
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}

	res := NewScorer(m, zerolog.Nop()).Score(Request{Selected: []string{"rash"}, Gender: "f", Age: 25, TopK: 10})
	if !res.Fallback {
		t.Fatal("expected vocabulary fallback when every neighbor is outside the vocabulary")
	}
	if got, want := res.IDs(), []string{"cough", "fever"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestScorer_FallbackRanksByPrior(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	got := s.Recommend(Request{Gender: "m", Age: 40, TopK: 3})

	// fatigue and nausea tie on prior 0.2; IDs break the tie.
	want := []string{"fatigue", "nausea", "rash"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestScorer_ExcludesSelectedAndUnknownCandidates(t *testing.T) {
	t.Parallel()

	m := clinicModel(t)
	s := NewScorer(m, zerolog.Nop())
	selected := []string{"fever", "cough"}
	got := s.Recommend(Request{Selected: selected, Gender: "m", Age: 40, TopK: 100})

	for _, id := range got {
		if id == "fever" || id == "cough" {
			t.Errorf("selected symptom %q recommended back", id)
		}
		if !m.Contains(id) {
			t.Errorf("recommended %q is not in the vocabulary", id)
		}
	}
	sort.Strings(got)
	if want := []string{"fatigue", "headache", "rash"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pool = %v, want %v", got, want)
	}
}

func TestScorer_DuplicatesWeighMeans(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	req := Request{Selected: []string{"fever", "fever", "cough", "unknown"}, Gender: "x", Age: 5, TopK: 10, Alpha: f64(1), Beta: f64(0)}
	res := s.Score(req)

	if !reflect.DeepEqual(res.Selected, []string{"fever", "fever", "cough"}) {
		t.Fatalf("Selected = %v, want duplicates kept and unknown dropped", res.Selected)
	}

	var rash, fatigue *ScoredCandidate
	for i := range res.Items {
		switch res.Items[i].Symptom {
		case "rash":
			rash = &res.Items[i]
		case "fatigue":
			fatigue = &res.Items[i]
		}
	}
	if rash == nil || fatigue == nil {
		t.Fatalf("expected rash and fatigue in %v", res.IDs())
	}
	// (0.1 + 0.1 + 0) / 3 and (0 + 0 + 0.2) / 3
	if math.Abs(rash.CoGlobal-0.2/3) > tolerance {
		t.Errorf("rash co_global = %v, want %v", rash.CoGlobal, 0.2/3)
	}
	if math.Abs(fatigue.CoGlobal-0.2/3) > tolerance {
		t.Errorf("fatigue co_global = %v, want %v", fatigue.CoGlobal, 0.2/3)
	}
}

func TestScorer_ScoreDecomposition(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	requests := []Request{
		{Selected: []string{"fever"}, Gender: "m", Age: 40, TopK: 10},
		{Selected: []string{"fever", "cough"}, Gender: "M", Age: 49, TopK: 10, Alpha: f64(0.3), Beta: f64(0.9)},
		{Selected: []string{"headache"}, Gender: "f", Age: 22, TopK: 10, Alpha: f64(1.2), Beta: f64(-0.5)},
		{Gender: "m", Age: 35, TopK: 10},
	}

	for _, req := range requests {
		res := s.Score(req)
		for _, it := range res.Items {
			want := res.Alpha*(res.Beta*it.CoDemo+(1-res.Beta)*it.CoGlobal) + (1-res.Alpha)*it.PriorDemo
			if math.Abs(it.Final-want) > tolerance {
				t.Errorf("%s: final = %v, want %v", it.Symptom, it.Final, want)
			}
		}
	}
}

func TestScorer_BlendExtremes(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	selected := []string{"fever", "cough"}

	demoOnly := s.Explain(Request{Selected: selected, Gender: "m", Age: 40, TopK: 10, Alpha: f64(1), Beta: f64(1)})
	for _, it := range demoOnly {
		if it.Final != it.CoDemo {
			t.Errorf("alpha=1 beta=1: %s final = %v, want co_demo %v", it.Symptom, it.Final, it.CoDemo)
		}
	}

	priorOnly := s.Explain(Request{Selected: selected, Gender: "m", Age: 40, TopK: 10, Alpha: f64(0), Beta: f64(0.5)})
	for _, it := range priorOnly {
		if it.Final != it.PriorDemo {
			t.Errorf("alpha=0: %s final = %v, want prior %v", it.Symptom, it.Final, it.PriorDemo)
		}
	}
}

func TestScorer_Deterministic(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	req := Request{Selected: []string{"rash"}, Gender: "q", Age: 70, TopK: 10}

	// Every candidate scores 0 here, so order depends only on the tie-break.
	first := s.Recommend(req)
	if want := []string{"cough", "fatigue", "fever", "headache", "nausea"}; !reflect.DeepEqual(first, want) {
		t.Fatalf("Recommend() = %v, want %v", first, want)
	}
	for i := 0; i < 20; i++ {
		if got := s.Recommend(req); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}

func TestScorer_RecommendMatchesExplain(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	req := Request{Selected: []string{"fever", "headache"}, Gender: "m", Age: 41, TopK: 4}

	ids := s.Recommend(req)
	items := s.Explain(req)
	if len(ids) != len(items) {
		t.Fatalf("len mismatch: %d vs %d", len(ids), len(items))
	}
	for i := range ids {
		if ids[i] != items[i].Symptom {
			t.Errorf("rank %d: %q vs %q", i, ids[i], items[i].Symptom)
		}
	}
	if len(ids) > req.TopK {
		t.Errorf("returned %d items for top_k %d", len(ids), req.TopK)
	}
}

func TestScorer_EmptyVocabulary(t *testing.T) {
	t.Parallel()

	m, err := model.New(model.Document{Vocab: []string{}, Notes: model.Notes{AlphaDefault: f64(0.5), BetaDefault: f64(0.5)}})
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}
	s := NewScorer(m, zerolog.Nop())
	if got := s.Recommend(Request{Selected: []string{"fever"}, TopK: 10}); len(got) != 0 {
		t.Errorf("Recommend() = %v, want empty", got)
	}
}

func TestScorer_NaNWeightsSortLast(t *testing.T) {
	t.Parallel()

	items := []ScoredCandidate{
		{Symptom: "b", Final: math.NaN()},
		{Symptom: "a", Final: 0.1},
		{Symptom: "c", Final: 0.5},
	}
	rank(items)
	if items[0].Symptom != "c" || items[1].Symptom != "a" || items[2].Symptom != "b" {
		t.Errorf("rank order = %v", []string{items[0].Symptom, items[1].Symptom, items[2].Symptom})
	}
}

func TestScorer_Neighbors(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())

	tests := []struct {
		name  string
		query NeighborQuery
		want  []Neighbor
	}{
		{
			name:  "global",
			query: NeighborQuery{Symptom: "fever"},
			want:  []Neighbor{{"ghost", 0.9}, {"cough", 0.6}, {"rash", 0.1}},
		},
		{
			name:  "demographic",
			query: NeighborQuery{Symptom: "fever", Gender: str("M"), Age: intp(37)},
			want:  []Neighbor{{"headache", 0.3}, {"cough", 0.2}},
		},
		{
			name:  "gender without age uses global",
			query: NeighborQuery{Symptom: "headache", Gender: str("m")},
			want:  []Neighbor{{"nausea", 0.4}},
		},
		{
			name:  "age without gender uses global",
			query: NeighborQuery{Symptom: "cough", Age: intp(40)},
			want:  []Neighbor{{"fever", 0.5}, {"fatigue", 0.2}},
		},
		{
			name:  "unknown symptom",
			query: NeighborQuery{Symptom: "ghost"},
			want:  []Neighbor{},
		},
		{
			name:  "unknown demographic",
			query: NeighborQuery{Symptom: "fever", Gender: str("f"), Age: intp(80)},
			want:  []Neighbor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Neighbors(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighbors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScorer_NeighborsFeverScenario(t *testing.T) {
	t.Parallel()

	s := NewScorer(feverModel(t), zerolog.Nop())
	got := s.Neighbors(NeighborQuery{Symptom: "fever"})
	want := []Neighbor{{Symptom: "cough", Weight: 0.6}, {Symptom: "rash", Weight: 0.1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(fever) = %v, want %v", got, want)
	}
}

func TestScorer_Concurrent(t *testing.T) {
	t.Parallel()

	s := NewScorer(clinicModel(t), zerolog.Nop())
	req := Request{Selected: []string{"fever", "cough"}, Gender: "m", Age: 40, TopK: 5}
	want := s.Recommend(req)

	var wg sync.WaitGroup
	errs := make(chan []string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Recommend(req); !reflect.DeepEqual(got, want) {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Recommend() = %v, want %v", got, want)
	}
}
