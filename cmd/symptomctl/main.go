// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

// Command symptomctl runs recommendations and model queries offline against
// the same model and evaluation files the server loads.
package main

import (
	"os"

	"github.com/tomtom215/symptomrec/internal/config"
	"github.com/tomtom215/symptomrec/internal/logging"
)

func main() {
	logging.Init(logging.Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	})

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
