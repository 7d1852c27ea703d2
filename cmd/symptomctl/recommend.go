// SymptomRec - Demographic-Aware Symptom Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/symptomrec

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/symptomrec/internal/recommend"
)

// recommendOptions holds the scoring flags shared by recommend and explain.
type recommendOptions struct {
	gender   string
	age      int
	selected []string
	topK     int
	alpha    float64
	beta     float64
}

func (o *recommendOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.gender, "gender", "", "Patient gender")
	f.IntVar(&o.age, "age", 0, "Patient age in years")
	f.StringSliceVarP(&o.selected, "symptom", "s", nil, "Selected symptom (repeatable or comma-separated)")
	f.IntVarP(&o.topK, "top-k", "k", recommend.DefaultTopK, "Maximum number of results")
	f.Float64Var(&o.alpha, "alpha", 0, "Co-occurrence weight (model default when unset)")
	f.Float64Var(&o.beta, "beta", 0, "Demographic weight (model default when unset)")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("age")
}

func (o *recommendOptions) request(cmd *cobra.Command) recommend.Request {
	req := recommend.Request{
		Selected: o.selected,
		Gender:   o.gender,
		Age:      o.age,
		TopK:     o.topK,
	}
	if cmd.Flags().Changed("alpha") {
		alpha := o.alpha
		req.Alpha = &alpha
	}
	if cmd.Flags().Changed("beta") {
		beta := o.beta
		req.Beta = &beta
	}
	return req
}

func newRecommendCmd(g *globalOptions) *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank follow-up symptoms for a selection",
		Example: `  symptomctl recommend --gender female --age 26 -s fever -s cough
  symptomctl recommend --gender male --age 70 -s headache --top-k 3 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.scorer()
			if err != nil {
				return err
			}
			res := s.Score(opts.request(cmd))
			return g.write(cmd, map[string]any{"recommendations": res.IDs()})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newExplainCmd(g *globalOptions) *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Rank follow-up symptoms with their score breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.scorer()
			if err != nil {
				return err
			}
			res := s.Score(opts.request(cmd))
			return g.write(cmd, map[string]any{
				"demographic": res.DemographicKey,
				"alpha":       res.Alpha,
				"beta":        res.Beta,
				"fallback":    res.Fallback,
				"items":       res.Items,
			})
		},
	}
	opts.bind(cmd)
	return cmd
}
