// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphstats/internal/graphio"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCSV  = "csv"
)

// configKeyAnnotation marks a flag with the config key it overrides.
const configKeyAnnotation = "graphstats/config-key"

// bindFlag records that flag name overrides config key. Bindings are
// applied only for the command that actually runs, so several commands may
// share a key.
func bindFlag(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(fmt.Sprintf("graphstats: bind %s: %v", name, err))
	}
}

// bindFlags hands every annotated flag of the running command to viper.
func (a *app) bindFlags(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[configKeyAnnotation]
		if err != nil || len(keys) == 0 {
			return
		}
		err = a.cfg.v.BindPFlag(keys[0], f)
	})

	return err
}

// emit writes report in the configured format. CSV is only available when
// the command produces a primary matrix.
func (a *app) emit(report any, primary mat.Matrix) error {
	switch a.cfg.OutputFormat() {
	case formatCSV:
		if primary == nil {
			return fmt.Errorf("csv output is not available for this command")
		}
		return graphio.WriteDense(a.out, primary)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// rows converts m to row slices for serialization.
func rows(m mat.Matrix) [][]float64 {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}
