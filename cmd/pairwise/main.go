// SPDX-License-Identifier: MIT

// pairwise ranks alternatives by pairwise comparison.
//
// Usage:
//
//	pairwise                      prompt for R (run) or T (self-test)
//	pairwise run [--judgments FILE] [--record FILE] [--fixpoint] [--format ascii|markdown]
//	pairwise test
//	pairwise version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
