// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package main serves the SymptomRec HTTP API.
//
// SymptomRec suggests follow-up symptoms for a patient from a static
// co-occurrence model, blending global and demographic statistics.
//
// @title SymptomRec API
// @version 1.0
// @description Demographic-aware symptom recommendation service.
// @description
// @description ## Scoring
// @description
// @description For each candidate c and selected symptoms S (n = max(1, |S|)):
// @description `final = alpha*(beta*co_demo + (1-beta)*co_global) + (1-alpha)*prior`
// @description where co_demo and co_global are mean conditional probabilities over S.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api/v1.
// @description Health endpoints are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_FAILED", "message": "gender is required", "details": {}},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T00:00:00Z", "duration_ms": 0}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/symptomrec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommend
// @tag.description Ranked follow-up symptoms and score breakdowns
//
// @tag.name Catalog
// @tag.description Vocabulary, neighbor rules and model summary
//
// @tag.name Evaluation
// @tag.description Offline evaluation summary
//
// @tag.name Core
// @tag.description Liveness
package main
