// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstats/internal/graphio"
	"github.com/katalvlaran/graphstats/match"
	"github.com/katalvlaran/graphstats/network"
)

// netFlags are the structural flags shared by every command reading networks.
type netFlags struct {
	directed bool
	weighted bool
	loops    bool
	nodes    int
}

func (nf *netFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&nf.directed, "directed", false, "treat input networks as directed")
	fs.BoolVar(&nf.weighted, "weighted", false, "keep edge weights instead of requiring 0/1 entries")
	fs.BoolVar(&nf.loops, "loops", false, "keep self-loops")
	fs.IntVar(&nf.nodes, "nodes", 0, "node count for edge-list input (0 infers it)")
}

func (nf netFlags) options() []network.Option {
	return []network.Option{
		network.WithDirected(nf.directed),
		network.WithWeighted(nf.weighted),
		network.WithLoops(nf.loops),
	}
}

// load reads a network: ".csv" files are dense adjacency matrices, anything
// else is an edge list.
func (nf netFlags) load(path string) (*network.Network, error) {
	if path == "" {
		return nil, fmt.Errorf("missing network input path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		a, err := graphio.ReadDense(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return network.New(a, nf.options()...)
	}
	edges, n, err := graphio.ReadEdgeList(f, nf.nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return network.FromEdges(n, edges, nf.options()...)
}

func loadDense(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadDense(f)
}

func loadLabels(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadLabels(f)
}

func loadInts(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadInts(f)
}

func loadSeedPairs(path string) ([]match.SeedPair, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadSeedPairs(f)
}
