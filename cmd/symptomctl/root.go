// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/symptomrec/internal/config"
	"github.com/tomtom215/symptomrec/internal/logging"
	"github.com/tomtom215/symptomrec/internal/model"
	"github.com/tomtom215/symptomrec/internal/recommend"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	modelPath string
	evalPath  string
	format    string
}

// newRootCmd builds the command tree. File flags default to cfg so the CLI
// resolves the same model and summary as the server.
func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "symptomctl",
		Short:         "Query the symptom co-occurrence model offline",
		Long:          "symptomctl scores symptom selections and inspects the model without running the HTTP server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := parseFormat(opts.format)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.modelPath, "model", cfg.Model.Path, "Model file (JSON, gzip or zstd)")
	pf.StringVar(&opts.evalPath, "eval", cfg.Eval.SummaryPath, "Evaluation summary CSV")
	pf.StringVar(&opts.format, "format", string(FormatJSON), "Output format (json, yaml)")

	root.AddCommand(
		newRecommendCmd(opts),
		newExplainCmd(opts),
		newRulesCmd(opts),
		newVocabCmd(opts),
		newModelCmd(opts),
		newEvalCmd(opts),
	)
	return root
}

// scorer loads the model named by --model.
func (o *globalOptions) scorer() (*recommend.Scorer, error) {
	m, err := model.Load(o.modelPath)
	if err != nil {
		return nil, err
	}
	return recommend.NewScorer(m, logging.WithComponent("symptomctl")), nil
}

// write renders v to the command's output in the selected format.
func (o *globalOptions) write(cmd *cobra.Command, v any) error {
	format, err := parseFormat(o.format)
	if err != nil {
		return err
	}
	out, err := FormatResponse(v, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
