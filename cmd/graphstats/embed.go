// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/decompose"
	"github.com/katalvlaran/graphstats/embed"
	"github.com/katalvlaran/graphstats/network"
)

// positionsReport is the serialized form of one embedding.
type positionsReport struct {
	N         int         `json:"n" yaml:"n"`
	Dimension int         `json:"dimension" yaml:"dimension"`
	Values    []float64   `json:"values" yaml:"values"`
	Out       [][]float64 `json:"out" yaml:"out"`
	In        [][]float64 `json:"in,omitempty" yaml:"in,omitempty"`
	Warnings  []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type embedReport struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Method    string            `json:"method" yaml:"method"`
	Positions []positionsReport `json:"positions" yaml:"positions"`
	MDS       [][]float64       `json:"mds,omitempty" yaml:"mds,omitempty"`
}

func newPositionsReport(lp *embed.LatentPositions) positionsReport {
	r := positionsReport{
		N:         lp.N(),
		Dimension: lp.Dimension(),
		Values:    lp.Values(),
		Out:       rows(lp.Out()),
	}
	if lp.Directed() {
		r.In = rows(lp.In())
	}
	for _, w := range lp.Warnings() {
		r.Warnings = append(r.Warnings, w.Error())
	}

	return r
}

// embedOptions turns the embed.* configuration into embed options.
func (a *app) embedOptions() ([]embed.Option, error) {
	if a.cfg.Dimension() < 0 {
		return nil, fmt.Errorf("dimension must be >= 0, got %d", a.cfg.Dimension())
	}
	alg, err := decompose.ParseAlgorithm(strings.ToLower(a.cfg.Algorithm()))
	if err != nil {
		return nil, err
	}
	form, err := network.ParseLaplacianForm(a.cfg.LaplacianForm())
	if err != nil {
		return nil, err
	}

	return []embed.Option{
		embed.WithDimension(a.cfg.Dimension()),
		embed.WithAlgorithm(alg),
		embed.WithSeed(a.cfg.Seed()),
		embed.WithDiagAug(a.cfg.DiagAug()),
		embed.WithForm(form),
		embed.WithRowNormalize(a.cfg.RowNormalize()),
		embed.WithLogger(a.log),
	}, nil
}

// embedder builds the configured single-network embedder.
func (a *app) embedder() (embed.Embedder, error) {
	opts, err := a.embedOptions()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(a.cfg.EmbedMethod()) {
	case "ase":
		return embed.NewASE(opts...), nil
	case "lse":
		return embed.NewLSE(opts...), nil
	default:
		return nil, fmt.Errorf("unknown embedding method %q (want ase or lse)", a.cfg.EmbedMethod())
	}
}

func newEmbedCmd(a *app) *cobra.Command {
	var (
		nf     netFlags
		inputs []string
		mdsDim int
	)
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed networks into latent positions",
		Long: `Embed one network with adjacency (ase) or Laplacian (lse) spectral
embedding. With several --input files the networks are embedded jointly by the
omnibus embedding; --mds then places the networks themselves in a low
dimensional space.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(inputs) == 0 {
				return fmt.Errorf("at least one --input is required")
			}
			nets := make([]*network.Network, len(inputs))
			for i, path := range inputs {
				net, err := nf.load(path)
				if err != nil {
					return err
				}
				nets[i] = net
			}

			if len(nets) == 1 {
				e, err := a.embedder()
				if err != nil {
					return err
				}
				lp, err := e.Embed(nets[0])
				if err != nil {
					return err
				}
				a.log.Info().Int("n", lp.N()).Int("dimension", lp.Dimension()).Msg("embedded")

				return a.emit(embedReport{
					RunID:     a.runID,
					Method:    strings.ToLower(a.cfg.EmbedMethod()),
					Positions: []positionsReport{newPositionsReport(lp)},
				}, lp.Out())
			}

			opts, err := a.embedOptions()
			if err != nil {
				return err
			}
			lps, err := embed.Omnibus(nets, opts...)
			if err != nil {
				return err
			}
			report := embedReport{RunID: a.runID, Method: "omnibus"}
			for _, lp := range lps {
				report.Positions = append(report.Positions, newPositionsReport(lp))
			}
			var primary mat.Matrix = lps[0].Out()
			if mdsDim > 0 {
				dis, err := embed.Dissimilarity(lps)
				if err != nil {
					return err
				}
				coords, err := embed.ClassicalMDS(dis, mdsDim)
				if err != nil {
					return err
				}
				report.MDS = rows(coords)
				primary = coords
			}
			a.log.Info().Int("networks", len(nets)).Int("dimension", lps[0].Dimension()).Msg("omnibus embedded")

			return a.emit(report, primary)
		},
	}

	fs := cmd.Flags()
	nf.register(fs)
	fs.StringSliceVarP(&inputs, "input", "i", nil, "network file (.csv adjacency or edge list); repeat for omnibus")
	fs.IntVar(&mdsDim, "mds", 0, "with several inputs, embed the networks themselves into this many dimensions")
	fs.String("method", "ase", "single-network embedding: ase or lse")
	fs.IntP("dimension", "d", 0, "embedding dimension (0 selects it from the scree plot)")
	fs.String("algorithm", "auto", "decomposition: auto, full, eigen or randomized")
	fs.String("form", "DAD", "Laplacian form for lse: L, DAD, I-DAD or R-DAD")
	fs.Bool("diag-aug", false, "replace the adjacency diagonal by degree/(n-1) before embedding")
	fs.Bool("row-normalize", false, "scale every latent position to unit length")
	bindFlag(fs, "method", "embed.method")
	bindFlag(fs, "dimension", "embed.dimension")
	bindFlag(fs, "algorithm", "embed.algorithm")
	bindFlag(fs, "form", "embed.form")
	bindFlag(fs, "diag-aug", "embed.diag_aug")
	bindFlag(fs, "row-normalize", "embed.row_normalize")

	return cmd
}
