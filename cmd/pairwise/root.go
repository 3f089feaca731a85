// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "pairwise",
		Short: "Rank alternatives by pairwise comparison",
		Long: "pairwise asks for one judgment per pair of alternatives, infers what it can\n" +
			"by transitivity, and ranks the alternatives against a reference scale.",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrompt(cmd, g)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file (default: bundled data set)")
	pf.StringVar(&g.envFile, "env-file", ".env", "dotenv file with PAIRWISE_* overrides")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: pretty, json")

	root.AddCommand(newRunCmd(g), newTestCmd(g), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pairwise %s\n", version)
		},
	}
}

// runPrompt is the bare `pairwise` entry: one line selects the mode.
func runPrompt(cmd *cobra.Command, g *globalFlags) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "Enter 'R' to run the program or 'T' to run tests: ")
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read mode: %w", err)
	}
	choice := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(choice, "R"):
		e, err := setup(cmd, g)
		if err != nil {
			return err
		}
		defer e.close()
		return runSession(cmd.Context(), e, runFlags{}, in, out)
	case strings.HasPrefix(choice, "T"):
		e, err := setup(cmd, g)
		if err != nil {
			return err
		}
		defer e.close()
		return runSelfTest(cmd.Context(), e, out)
	default:
		fmt.Fprintln(out, "Invalid choice. Please enter 'R' or 'T'.")
		return nil
	}
}

// env is the per-invocation state shared by the sub-commands.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	session string
	closer  io.Closer
}

func (e *env) close() {
	if err := e.closer.Close(); err != nil {
		e.log.Warn().Err(err).Msg("closing log files")
	}
}

// setup resolves configuration (bundled defaults, --config file, .env and
// environment, then flags) and builds the session logger.
func setup(cmd *cobra.Command, g *globalFlags) (*env, error) {
	if err := config.LoadEnvFile(g.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = g.logFormat
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("fixpoint") != nil && flags.Changed("fixpoint") {
		cfg.Session.Fixpoint, _ = flags.GetBool("fixpoint")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	session := uuid.NewString()
	log, closer, err := logger.New(logger.Config{
		Level:         cfg.Logging.Level,
		Format:        cfg.Logging.Format,
		Dir:           cfg.Logging.Dir,
		RotationSize:  cfg.Logging.RotationSize,
		RetentionDays: cfg.Logging.RetentionDays,
		Session:       session,
		Version:       version,
	}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log, session: session, closer: closer}, nil
}
