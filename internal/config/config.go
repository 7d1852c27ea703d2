// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Package config loads SymptomRec configuration from layered sources.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML file
// (CONFIG_PATH, ./config.yaml, ./config.yml, /etc/symptomrec/config.yaml),
// then the environment variables listed in envMappings. Unknown environment
// variables are ignored.
//
// Example config.yaml:
//
//	server:
//	  port: 8000
//	model:
//	  path: /data/symptom_model_v2.json
//	recommend:
//	  default_top_k: 10
//	security:
//	  cors_origins: ["https://triage.example.com"]
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Model     ModelConfig     `koanf:"model"`
	Eval      EvalConfig      `koanf:"eval"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// ModelConfig locates the co-occurrence model file. Plain JSON, gzip and
// zstd compressed files are accepted.
type ModelConfig struct {
	Path string `koanf:"path"`
}

// EvalConfig locates the offline evaluation summary CSV.
type EvalConfig struct {
	SummaryPath string `koanf:"summary_path"`
}

// RecommendConfig holds request-level defaults for the scorer.
type RecommendConfig struct {
	// DefaultTopK is used when a request omits top_k.
	DefaultTopK int `koanf:"default_top_k"`

	// MaxTopK caps top_k accepted from clients.
	MaxTopK int `koanf:"max_top_k"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller adds file:line to each entry.
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
