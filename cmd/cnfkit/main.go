// Command cnfkit parses a Boolean feature-model formula, runs it through
// a pipeline of normalization/CNF rewrites, and emits a formula, a
// DIMACS clause listing, a satisfying assignment, a model count, an
// enumeration, or a formula-to-formula diff (spec §6). The CLI shell
// itself is an out-of-scope external collaborator (spec §1); this is
// the thinnest possible cobra wiring around shell.Run, following the
// cobra/pflag convention used across the example pack's CLI tools
// rather than any one teacher file (the teacher repo carries no CLI).
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/boolforge/cnfkit/config"
	"github.com/boolforge/cnfkit/shell"
	"github.com/boolforge/cnfkit/solver"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		auxPrefix   string
		maxBlowup   int
		satBinary   string
		countBinary string
		enumBinary  string
		verbose     bool
	)

	cfg := config.Default()

	root := &cobra.Command{
		Use:          "cnfkit <input-path|-> [command ...]",
		Short:        "Normalize and clausify Boolean feature-model formulas",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.AuxPrefix = auxPrefix
			cfg.MaxBlowup = maxBlowup
			cfg.SatBinary = satBinary
			cfg.CountBinary = countBinary
			cfg.EnumBinary = enumBinary

			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			sv := &solver.Adapter{
				SatCmd:   cfg.SatBinary,
				CountCmd: cfg.CountBinary,
				EnumCmd:  cfg.EnumBinary,
				Log:      log,
			}

			exitCode := shell.Run(context.Background(), cfg, sv, cmd.OutOrStdout(), log, args)
			cmd.SetContext(context.WithValue(cmd.Context(), exitCodeKey{}, exitCode))
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVar(&auxPrefix, "aux-prefix", cfg.AuxPrefix, "prefix for displayed auxiliary variable names")
	flags.IntVar(&maxBlowup, "max-blowup", cfg.MaxBlowup, "clause-product threshold before the partial distributive rewrite abbreviates with Tseitin")
	flags.StringVar(&satBinary, "sat-binary", cfg.SatBinary, "command line for the external SAT solver, %s substituted with a DIMACS path")
	flags.StringVar(&countBinary, "count-binary", cfg.CountBinary, "command line for the external #SAT solver")
	flags.StringVar(&enumBinary, "enum-binary", cfg.EnumBinary, "command line for the external all-SAT solver")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pflag.CommandLine = flags

	ctx := context.WithValue(context.Background(), exitCodeKey{}, shell.ExitUsage)
	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		return shell.ExitUsage
	}
	if code, ok := root.Context().Value(exitCodeKey{}).(int); ok {
		return code
	}
	return shell.ExitOK
}

type exitCodeKey struct{}
