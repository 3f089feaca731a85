// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/crossscale"
	"github.com/katalvlaran/pairwise/driver"
	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
	"github.com/katalvlaran/pairwise/rank"
	"github.com/katalvlaran/pairwise/report"
)

type runFlags struct {
	judgments string
	record    string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	rf := runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compare every pair of alternatives and rank them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer e.close()

			return runSession(cmd.Context(), e, rf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&rf.judgments, "judgments", "", "answer from a judgment file; pairs it lacks are asked on stdin")
	f.StringVar(&rf.record, "record", "", "save every judgment given to this file")
	f.Bool("fixpoint", false, "propagate to a fixpoint after each pair")
	f.String("format", "", "table format: ascii, markdown")

	return cmd
}

// runSession drives one full session: the sweep, the matrices, the ranking
// and the cross-scale check.
func runSession(ctx context.Context, e *env, rf runFlags, in io.Reader, out io.Writer) error {
	cfg := e.cfg
	alts := prefmatrix.Alternatives(cfg.Data.Alternatives)
	mode, err := report.ParseMode(cfg.Report.Format)
	if err != nil {
		return err
	}
	rep := report.New(out, mode)

	if err = rep.List("A set of alternatives to the first reference situation:", alts); err != nil {
		return err
	}

	m, err := cfg.SeedMatrix()
	if err != nil {
		return err
	}
	initial := m.Clone()

	var src oracle.Source = oracle.NewConsole(in, out)
	if rf.judgments != "" {
		js, err := config.LoadJudgments(rf.judgments)
		if err != nil {
			return err
		}
		if src, err = oracle.NewByPair(config.PairTable(js), src); err != nil {
			return err
		}
		e.log.Info().Str("file", rf.judgments).Int("judgments", len(js)).Msg("replaying judgments")
	}
	var rec *oracle.Recorder
	if rf.record != "" {
		rec = oracle.NewRecorder(src)
		src = rec
	}

	o, err := oracle.New(alts, src, oracle.WithLogger(e.log))
	if err != nil {
		return err
	}
	sum, sweepErr := driver.Sweep(ctx, m, o,
		driver.WithOnCompare(rep.CompareBanner(alts)),
		driver.WithObserver(rep.StepObserver(alts)),
		driver.WithFixpoint(cfg.Session.Fixpoint),
		driver.WithMaxPasses(cfg.Session.MaxPasses),
		driver.WithLogger(e.log),
	)
	if rec != nil {
		if err := config.SaveJudgments(rf.record, e.session, rec.Judgments()); err != nil {
			e.log.Error().Err(err).Str("file", rf.record).Msg("saving judgments")
			if sweepErr == nil {
				return err
			}
		}
	}
	if sweepErr != nil {
		return fmt.Errorf("comparison sweep: %w", sweepErr)
	}

	if err = rep.Matrix("Initial matrix:", alts, initial); err != nil {
		return err
	}
	if err = rep.Matrix("Final matrix:", alts, m); err != nil {
		return err
	}
	if err = rep.Summary(sum); err != nil {
		return err
	}

	return reportRanking(e, rep, alts)
}

// reportRanking prints the reference scale, the ranked alternatives and the
// cross-scale tables when configured.
func reportRanking(e *env, rep *report.Reporter, alts prefmatrix.Alternatives) error {
	cfg := e.cfg
	ranked, err := rank.Rank(alts, cfg.Data.Scale)
	if err != nil {
		return err
	}
	if err = rep.List("Single ordinal scale", cfg.Data.Scale); err != nil {
		return err
	}
	if err = rep.Ranked("Sorted set of alternatives to the first reference situation:", ranked); err != nil {
		return err
	}

	if len(cfg.Data.Valuation) == 0 {
		return nil
	}
	res, err := crossscale.Validate(cfg.Data.Valuation, cfg.Data.Criteria, cfg.Data.Scale)
	if err != nil {
		return err
	}
	for _, miss := range res.Misses {
		e.log.Error().Int("row", miss.Row).Int("col", miss.Col).
			Str("criterion", miss.Criterion).Msg("criterion not found in reference scale")
	}

	return rep.CrossScale(cfg.Data.Valuation, res)
}
