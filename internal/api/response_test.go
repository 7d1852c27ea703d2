// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/symptomrec/internal/logging"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))

	NewResponseWriter(rec, req).Success(map[string]string{"message": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	resp := decodeResponse(t, rec)
	if !resp.Success || resp.Error != nil {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Meta == nil || resp.Meta.RequestID != "req-1" || resp.Meta.Timestamp.IsZero() {
		t.Errorf("meta = %+v", resp.Meta)
	}
}

func TestResponseWriter_UnencodableData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-inf"))

	NewResponseWriter(rec, req).Success(map[string]float64{"final": math.Inf(-1)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Success || resp.Error == nil || resp.Error.Code != ErrCodeInternalError {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Error != nil && resp.Error.RequestID != "req-inf" {
		t.Errorf("request_id = %q", resp.Error.RequestID)
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		write  func(*ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("bad field", map[string]any{"field": "age"}) }, http.StatusBadRequest, ErrCodeValidationFailed},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, ErrCodeNotFound},
		{"method", func(rw *ResponseWriter) { rw.MethodNotAllowed() }, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"rate limit", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom", errors.New("disk")) }, http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-2"))

			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			resp := decodeResponse(t, rec)
			if resp.Success || resp.Data != nil {
				t.Errorf("resp = %+v", resp)
			}
			if resp.Error == nil || resp.Error.Code != tt.code || resp.Error.RequestID != "req-2" {
				t.Errorf("error = %+v", resp.Error)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"fever":     "fever",
		"a\nb":      `a\x0ab`,
		"tab\there": `tab\x09here`,
		"del\x7f":   `del\x7f`,
	}
	for in, want := range tests {
		if got := sanitizeLogValue(in); got != want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", in, got, want)
		}
	}
}
