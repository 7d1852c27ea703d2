// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/symptomrec/internal/recommend"
)

func newRulesCmd(g *globalOptions) *cobra.Command {
	var (
		gender string
		age    int
	)
	cmd := &cobra.Command{
		Use:   "rules SYMPTOM",
		Short: "List P(B|SYMPTOM) for every neighbor B",
		Long: `Lists the conditional neighbors of SYMPTOM, heaviest first.
The demographic table is used when both --gender and --age are given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.scorer()
			if err != nil {
				return err
			}
			q := recommend.NeighborQuery{Symptom: args[0]}
			if cmd.Flags().Changed("gender") {
				q.Gender = &gender
			}
			if cmd.Flags().Changed("age") {
				q.Age = &age
			}
			return g.write(cmd, map[string]any{
				"symptom":   args[0],
				"neighbors": s.Neighbors(q),
			})
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "", "Patient gender")
	cmd.Flags().IntVar(&age, "age", 0, "Patient age in years")
	return cmd
}

func newVocabCmd(g *globalOptions) *cobra.Command {
	var (
		query      string
		withCounts bool
	)
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List vocabulary symptoms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.scorer()
			if err != nil {
				return err
			}
			m := s.Model()
			items := m.Vocabulary(query)
			resp := map[string]any{"count": len(items), "items": items}
			if withCounts {
				counts := make(map[string]int64, len(items))
				for _, id := range items {
					counts[id] = m.Count(id)
				}
				resp["counts"] = counts
			}
			return g.write(cmd, resp)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Keep IDs containing this substring")
	cmd.Flags().BoolVar(&withCounts, "with-counts", false, "Include observation counts")
	return cmd
}

func newModelCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "model",
		Short: "Summarize the model file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.scorer()
			if err != nil {
				return err
			}
			return g.write(cmd, s.Model().Summary())
		},
	}
}
