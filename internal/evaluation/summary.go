// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package evaluation exposes the offline evaluation summary produced when the
// model was trained. The summary is a CSV with a header row; only the first
// data row is read.
package evaluation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// Summary is the first row of an evaluation CSV.
type Summary struct {
	// Found is false when the file does not exist.
	Found bool

	// Path is the file that was read.
	Path string

	// Columns lists header names in file order.
	Columns []string

	// Metrics maps each column to a float64 when the value parses as a
	// finite number, the raw string otherwise, or nil when the row is
	// shorter than the header.
	Metrics map[string]any
}

// NotFoundInfo is the human-readable note for a missing summary file.
func (s Summary) NotFoundInfo() string {
	return filepath.Base(s.Path) + " not found"
}

// ReadSummary loads the first data row of the CSV at path. A missing file is
// not an error: the result has Found=false and empty Metrics.
func ReadSummary(path string) (Summary, error) {
	s := Summary{Path: path, Metrics: map[string]any{}}

	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("open evaluation summary: %w", err)
	}
	defer f.Close()

	s.Found = true
	if err := s.read(f); err != nil {
		return s, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// ParseSummary reads an evaluation CSV from r.
func ParseSummary(r io.Reader) (Summary, error) {
	s := Summary{Found: true, Metrics: map[string]any{}}
	err := s.read(r)
	return s, err
}

func (s *Summary) read(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	s.Columns = header

	row, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	for i, col := range header {
		if i >= len(row) {
			s.Metrics[col] = nil
			continue
		}
		s.Metrics[col] = castValue(row[i])
	}
	return nil
}

// castValue parses v as a finite float64, falling back to the raw string.
func castValue(v string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return v
	}
	return f
}
