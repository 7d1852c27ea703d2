// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/server/doc.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/symptomrec/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recommend": {
            "post": {
                "description": "Ranks symptoms that co-occur with the selected ones, blending global and demographic statistics with the demographic prior.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Recommend follow-up symptoms",
                "parameters": [
                    {
                        "description": "Patient demographics and selected symptoms",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.RecommendResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed or invalid request",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        },
        "/recommend/explain": {
            "post": {
                "description": "Same ranking as /recommend with co_global, co_demo, prior_demo and final for each item.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommend"],
                "summary": "Explain recommendation scores",
                "parameters": [
                    {
                        "description": "Patient demographics and selected symptoms",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.ExplainResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Malformed or invalid request",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        },
        "/rules": {
            "get": {
                "description": "Returns P(B|symptom) for every neighbor B, heaviest first. Demographic-specific when both gender and age are given, global otherwise.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Symptom neighbors",
                "parameters": [
                    {"type": "string", "description": "Symptom ID", "name": "symptom", "in": "query", "required": true},
                    {"type": "string", "description": "Gender", "name": "gender", "in": "query"},
                    {"type": "integer", "description": "Age in years", "name": "age", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.RulesResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Missing symptom or non-integer age",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        },
        "/vocab": {
            "get": {
                "description": "Sorted vocabulary. q keeps IDs containing q (case-sensitive); with_counts adds observed frequencies.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Symptom vocabulary",
                "parameters": [
                    {"type": "string", "description": "Substring filter", "name": "q", "in": "query"},
                    {"type": "boolean", "description": "Include observation counts", "name": "with_counts", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.VocabResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid with_counts",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        },
        "/model": {
            "get": {
                "description": "Vocabulary size, demographic keys, blend defaults, total observations and load time.",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Loaded model summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.Summary"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/eval/metrics": {
            "get": {
                "description": "First data row of the evaluation CSV. Numeric values are returned as numbers, others as strings. A missing file is not an error.",
                "produces": ["application/json"],
                "tags": ["Evaluation"],
                "summary": "Offline evaluation metrics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/api.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.EvalMetricsResponse"}}}
                            ]
                        }
                    },
                    "500": {
                        "description": "Summary exists but could not be read",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 while the process is serving requests.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Service is alive",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "required": ["age", "gender", "selected_symptoms"],
            "properties": {
                "age": {"type": "integer", "example": 26},
                "alpha": {"type": "number", "example": 0.7},
                "beta": {"type": "number", "example": 0.6},
                "gender": {"type": "string", "example": "female"},
                "selected_symptoms": {"type": "array", "items": {"type": "string"}, "example": ["fever"]},
                "top_k": {"type": "integer", "minimum": 0, "example": 10}
            }
        },
        "api.RecommendResponse": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.ExplainResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/recommend.ScoredCandidate"}}
            }
        },
        "api.RulesResponse": {
            "type": "object",
            "properties": {
                "neighbors": {"type": "array", "items": {"$ref": "#/definitions/recommend.Neighbor"}},
                "symptom": {"type": "string"}
            }
        },
        "api.VocabResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "items": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.EvalMetricsResponse": {
            "type": "object",
            "properties": {
                "info": {"type": "string"},
                "metrics": {"type": "object", "additionalProperties": true}
            }
        },
        "model.Summary": {
            "type": "object",
            "properties": {
                "alpha_default": {"type": "number"},
                "beta_default": {"type": "number"},
                "demographics": {"type": "array", "items": {"type": "string"}},
                "global_rows": {"type": "integer"},
                "loaded_at": {"type": "string"},
                "source": {"type": "string"},
                "total_observations": {"type": "integer"},
                "vocabulary_size": {"type": "integer"}
            }
        },
        "recommend.Neighbor": {
            "type": "object",
            "properties": {
                "symptom": {"type": "string"},
                "weight": {"type": "number"}
            }
        },
        "recommend.ScoredCandidate": {
            "type": "object",
            "properties": {
                "co_demo": {"type": "number"},
                "co_global": {"type": "number"},
                "final": {"type": "number"},
                "prior_demo": {"type": "number"},
                "symptom": {"type": "string"}
            }
        }
    },
    "tags": [
        {"description": "Ranked follow-up symptoms and score breakdowns", "name": "Recommend"},
        {"description": "Vocabulary, neighbor rules and model summary", "name": "Catalog"},
        {"description": "Offline evaluation summary", "name": "Evaluation"},
        {"description": "Liveness", "name": "Core"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "SymptomRec API",
	Description:      "Demographic-aware symptom recommendation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
