// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/prefmatrix"
	"github.com/katalvlaran/pairwise/report"
	"github.com/katalvlaran/pairwise/selftest"
)

func newTestCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the built-in self-test battery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer e.close()

			return runSelfTest(cmd.Context(), e, cmd.OutOrStdout())
		},
	}
}

// runSelfTest prints the battery outcome. Failed checks are reported, not
// returned as an error.
func runSelfTest(ctx context.Context, e *env, out io.Writer) error {
	if _, err := io.WriteString(out, "Running tests...\n\n"); err != nil {
		return err
	}
	res := selftest.Run(ctx, prefmatrix.Alternatives(e.cfg.Data.Alternatives))
	e.log.Info().Int("passed", res.Passed()).Int("total", res.Total()).Msg("self-test finished")

	return report.New(out, report.ASCII).SelfTest(res)
}
