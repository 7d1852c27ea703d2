// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package docs

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistered(t *testing.T) {
	t.Parallel()

	doc, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("swag.ReadDoc() error = %v", err)
	}

	var spec struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}
	if spec.Info.Title != "SymptomRec API" || spec.BasePath != "/api/v1" {
		t.Errorf("info = %+v, basePath = %q", spec.Info, spec.BasePath)
	}
	for _, p := range []string{"/recommend", "/recommend/explain", "/rules", "/vocab", "/model", "/eval/metrics", "/health/live"} {
		if _, ok := spec.Paths[p]; !ok {
			t.Errorf("paths missing %s", p)
		}
	}
}
