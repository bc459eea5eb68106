// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg        *Config
	log        zerolog.Logger
	runID      string
	out        io.Writer
	configPath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: NewConfig(), log: zerolog.Nop(), out: stdout}

	root := &cobra.Command{
		Use:   "graphstats",
		Short: "Statistical inference on networks",
		Long: `graphstats embeds networks into latent positions, nominates vertices of
interest, estimates random graph models, matches vertices across networks and
samples networks from random graph models.

Configuration is read from --config (YAML), GRAPHSTATS_* environment
variables (e.g. GRAPHSTATS_MATCH_RESTARTS) and flags, in increasing priority.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bindFlags(cmd.Flags()); err != nil {
				return err
			}
			if a.configPath != "" {
				if err := a.cfg.LoadFromFile(a.configPath); err != nil {
					return fmt.Errorf("load config %s: %w", a.configPath, err)
				}
			}
			switch a.cfg.OutputFormat() {
			case formatJSON, formatYAML, formatCSV:
			default:
				return fmt.Errorf("unknown output format %q", a.cfg.OutputFormat())
			}
			a.log, a.runID = a.cfg.CreateLogger(stderr)
			a.log.Debug().Str("command", cmd.Name()).Msg("starting")

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.StringP("output", "o", formatJSON, "output format: json, yaml or csv")
	pf.Int64("seed", 1, "random seed")
	bindFlag(pf, "log-level", "logging.level")
	bindFlag(pf, "output", "output.format")
	bindFlag(pf, "seed", "random.seed")

	root.AddCommand(
		newEmbedCmd(a),
		newNominateCmd(a),
		newEstimateCmd(a),
		newMatchCmd(a),
		newSimulateCmd(a),
	)

	return root
}
