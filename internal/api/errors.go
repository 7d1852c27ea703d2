// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package api

import (
	"errors"

	"github.com/tomtom215/symptomrec/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeValidationFailed = validation.ErrorCode
)

var (
	// ErrEmptyBody is returned when a POST endpoint receives no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrTrailingData is returned when a JSON body holds more than one value.
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)
