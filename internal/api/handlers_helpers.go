// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/symptomrec/internal/validation"
)

// maxBodyBytes bounds POST bodies. A selection of a few hundred symptoms
// fits comfortably.
const maxBodyBytes = 1 << 20

// sanitizeLogValue replaces control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decodeJSONBody reads exactly one JSON value from the request body into dst.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if dec.More() {
		return ErrTrailingData
	}
	return nil
}

// writeValidationError renders a validation failure as VALIDATION_FAILED.
func writeValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// parseOptionalInt parses an integer query parameter. The bool reports
// whether the parameter was present at all.
func parseOptionalInt(r *http.Request, key string) (*int, bool, error) {
	q := r.URL.Query()
	if !q.Has(key) {
		return nil, false, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return nil, true, fmt.Errorf("%s must be an integer", key)
	}
	return &v, true, nil
}

// parseBoolParam parses an optional boolean query parameter.
func parseBoolParam(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return v, nil
}
