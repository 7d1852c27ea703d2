// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package evaluation

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadSummary_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eval_summary.csv")
	s, err := ReadSummary(path)
	if err != nil {
		t.Fatalf("ReadSummary() error = %v", err)
	}
	if s.Found {
		t.Error("Found = true for a missing file")
	}
	if s.Metrics == nil || len(s.Metrics) != 0 {
		t.Errorf("Metrics = %v, want empty map", s.Metrics)
	}
	if s.NotFoundInfo() != "eval_summary.csv not found" {
		t.Errorf("NotFoundInfo() = %q", s.NotFoundInfo())
	}
}

func TestReadSummary_FirstRow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eval_summary.csv")
	content := "hit@5,recall@10, model ,notes,ratio\n0.42, 0.7 ,v2,baseline run,1e-3\n0.1,0.2,v1,older,9\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := ReadSummary(path)
	if err != nil {
		t.Fatalf("ReadSummary() error = %v", err)
	}
	if !s.Found {
		t.Fatal("Found = false")
	}
	want := map[string]any{
		"hit@5":     0.42,
		"recall@10": 0.7,
		" model ":   "v2",
		"notes":     "baseline run",
		"ratio":     0.001,
	}
	if !reflect.DeepEqual(s.Metrics, want) {
		t.Errorf("Metrics = %#v, want %#v", s.Metrics, want)
	}
	if !reflect.DeepEqual(s.Columns, []string{"hit@5", "recall@10", " model ", "notes", "ratio"}) {
		t.Errorf("Columns = %v", s.Columns)
	}
}

func TestParseSummary_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		csv  string
		want map[string]any
	}{
		{"empty file", "", map[string]any{}},
		{"header only", "a,b\n", map[string]any{}},
		{"short row", "a,b,c\n1\n", map[string]any{"a": 1.0, "b": nil, "c": nil}},
		{"long row ignored extras", "a\n1,2,3\n", map[string]any{"a": 1.0}},
		{"non-finite kept as text", "a,b,c\nnan,inf,-Infinity\n", map[string]any{"a": "nan", "b": "inf", "c": "-Infinity"}},
		{"empty value kept as text", "a,b\n,2\n", map[string]any{"a": "", "b": 2.0}},
		{"byte order mark stripped", "\ufeffprecision\n0.5\n", map[string]any{"precision": 0.5}},
		{"quoted field", "label,score\n\"a, b\",3\n", map[string]any{"label": "a, b", "score": 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseSummary(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("ParseSummary() error = %v", err)
			}
			if !reflect.DeepEqual(s.Metrics, tt.want) {
				t.Errorf("Metrics = %#v, want %#v", s.Metrics, tt.want)
			}
		})
	}
}

func TestParseSummary_MalformedCSV(t *testing.T) {
	t.Parallel()

	_, err := ParseSummary(strings.NewReader("a,b\n\"unterminated,2\n"))
	if err == nil {
		t.Error("ParseSummary() should fail on an unterminated quote")
	}
}

func TestReadSummary_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := ReadSummary(dir)
	if err == nil {
		t.Error("ReadSummary() on a directory should fail")
	}
}
