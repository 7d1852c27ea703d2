// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Startup order:
//
//  1. Configuration: koanf (defaults, config.yaml, environment)
//  2. Logging: zerolog with JSON or console output
//  3. Model: loaded once from MODEL_PATH; startup aborts if it is invalid
//  4. Scorer and HTTP handlers
//  5. Supervisor tree: suture root with the HTTP server in the api layer
//
// The process stops on SIGINT or SIGTERM, giving in-flight requests
// HTTP_SHUTDOWN_TIMEOUT to finish.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/symptomrec/docs" // swagger spec for /swagger/*
	"github.com/tomtom215/symptomrec/internal/api"
	"github.com/tomtom215/symptomrec/internal/config"
	"github.com/tomtom215/symptomrec/internal/logging"
	"github.com/tomtom215/symptomrec/internal/metrics"
	"github.com/tomtom215/symptomrec/internal/model"
	"github.com/tomtom215/symptomrec/internal/recommend"
	"github.com/tomtom215/symptomrec/internal/supervisor"
	"github.com/tomtom215/symptomrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("model_path", cfg.Model.Path).
		Msg("Starting SymptomRec")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	scorer, err := loadScorer(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model")
	}
	metrics.SetAppInfo(version)

	router := api.NewRouter(
		api.NewHandler(scorer, cfg),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)),
	)
	server := newHTTPServer(cfg, router.SetupChi())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("SymptomRec stopped")
}

// loadScorer loads the model named in cfg and publishes its shape as metrics.
func loadScorer(cfg *config.Config) (*recommend.Scorer, error) {
	start := time.Now()
	m, err := model.Load(cfg.Model.Path)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	summary := m.Summary()
	metrics.RecordModelLoad(summary.VocabularySize, len(summary.Demographics), elapsed, m.LoadedAt())

	logging.Info().
		Str("path", summary.Source).
		Int("vocabulary", summary.VocabularySize).
		Int("demographics", len(summary.Demographics)).
		Float64("alpha_default", summary.AlphaDefault).
		Float64("beta_default", summary.BetaDefault).
		Dur("duration", elapsed).
		Msg("Model loaded")

	return recommend.NewScorer(m, logging.WithComponent("scorer")), nil
}

// newHTTPServer applies the configured timeouts. Writes get the request
// timeout plus headroom for encoding large explain responses.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}
}
