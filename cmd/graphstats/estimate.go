// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstats/embed"
	"github.com/katalvlaran/graphstats/estimate"
)

type estimateReport struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	Model       string      `json:"model" yaml:"model"`
	P           *float64    `json:"p,omitempty" yaml:"p,omitempty"`
	B           [][]float64 `json:"b,omitempty" yaml:"b,omitempty"`
	Sizes       []int       `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Edges       [][]float64 `json:"edges,omitempty" yaml:"edges,omitempty"`
	Possible    [][]float64 `json:"possible,omitempty" yaml:"possible,omitempty"`
	Probability [][]float64 `json:"probability,omitempty" yaml:"probability,omitempty"`
}

func newEstimateCmd(a *app) *cobra.Command {
	var (
		nf         netFlags
		input      string
		model      string
		labelsFile string
		blocks     int
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Fit ER, SBM or RDPG parameters to a network",
		Long: `Estimate random graph model parameters by maximum likelihood (er, sbm)
or from the adjacency spectral embedding (rdpg). SBM fitting needs --labels,
one 1-based block label per vertex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := nf.load(input)
			if err != nil {
				return err
			}
			report := estimateReport{RunID: a.runID, Model: model}

			switch model {
			case "er":
				p, err := estimate.ER(net)
				if err != nil {
					return err
				}
				report.P = &p
				a.log.Info().Float64("p", p).Msg("estimated")

				return a.emit(report, nil)

			case "sbm":
				if labelsFile == "" {
					return fmt.Errorf("sbm estimation requires --labels")
				}
				z, err := loadLabels(labelsFile)
				if err != nil {
					return err
				}
				k := blocks
				if k == 0 {
					for _, l := range z {
						k = max(k, l)
					}
				}
				be, err := estimate.SBM(net, z, k)
				if err != nil {
					return err
				}
				report.B = rows(be.B)
				report.Sizes = be.Sizes
				report.Edges = rows(be.Edges)
				report.Possible = rows(be.Possible)
				a.log.Info().Int("blocks", k).Msg("estimated")

				return a.emit(report, be.B)

			case "rdpg":
				opts, err := a.embedOptions()
				if err != nil {
					return err
				}
				lp, err := embed.NewASE(opts...).Embed(net)
				if err != nil {
					return err
				}
				p, err := estimate.RDPG(lp, net.Loops())
				if err != nil {
					return err
				}
				report.Probability = rows(p)
				a.log.Info().Int("dimension", lp.Dimension()).Msg("estimated")

				return a.emit(report, p)

			default:
				return fmt.Errorf("unknown model %q (want er, sbm or rdpg)", model)
			}
		},
	}

	fs := cmd.Flags()
	nf.register(fs)
	fs.StringVarP(&input, "input", "i", "", "network file (.csv adjacency or edge list)")
	fs.StringVar(&model, "model", "er", "model: er, sbm or rdpg")
	fs.StringVar(&labelsFile, "labels", "", "block label file for sbm, one label in [1,K] per line")
	fs.IntVar(&blocks, "blocks", 0, "number of blocks K for sbm (0 uses the largest label)")
	fs.IntP("dimension", "d", 0, "embedding dimension for rdpg (0 selects it from the scree plot)")
	bindFlag(fs, "dimension", "embed.dimension")

	return cmd
}
