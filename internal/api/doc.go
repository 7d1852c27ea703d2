// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

/*
Package api provides the HTTP REST API layer for SymptomRec.

Routes are served by a chi router and every response uses the same envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "..."}, "meta": {...}}

Endpoints:

  - POST /api/v1/recommend: ranked symptom IDs
  - POST /api/v1/recommend/explain: ranked IDs with score breakdown
  - GET  /api/v1/rules: neighbor lookup for one symptom
  - GET  /api/v1/vocab: vocabulary listing with substring filter
  - GET  /api/v1/eval/metrics: offline evaluation summary
  - GET  /api/v1/model: loaded model summary
  - GET  /api/v1/health/live and /healthz: liveness
  - GET  /metrics: Prometheus exposition
  - GET  /swagger/*: OpenAPI UI

Middleware, outermost first: request ID with logging context, real IP,
panic recovery, CORS, then per-group rate limiting, security headers,
Prometheus instrumentation and gzip compression.

The scorer and model are read-only after startup, so handlers hold no locks.
*/
package api
