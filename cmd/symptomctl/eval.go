// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/symptomrec/internal/evaluation"
)

func newEvalCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Print the offline evaluation summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := evaluation.ReadSummary(g.evalPath)
			if err != nil {
				return err
			}
			resp := map[string]any{"metrics": summary.Metrics}
			if !summary.Found {
				resp["info"] = summary.NotFoundInfo()
			}
			return g.write(cmd, resp)
		},
	}
}
