// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, int64(1), c.Seed())
	assert.Equal(t, "ase", c.EmbedMethod())
	assert.Equal(t, 0, c.Dimension())
	assert.Equal(t, "auto", c.Algorithm())
	assert.Equal(t, "DAD", c.LaplacianForm())
	assert.False(t, c.DiagAug())
	assert.False(t, c.RowNormalize())
	assert.Equal(t, "euclidean", c.Metric())
	assert.Equal(t, 10, c.K())
	assert.Equal(t, 256, c.IndexThreshold())
	assert.Equal(t, 30, c.MaxIter())
	assert.Equal(t, 0.01, c.Tolerance())
	assert.Equal(t, 1, c.Restarts())
	assert.Equal(t, "barycenter", c.Init())
	assert.Equal(t, "exact", c.LineSearch())
	assert.Equal(t, "info", c.LogLevel())
	assert.Equal(t, "json", c.OutputFormat())
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
embed:
  dimension: 3
  form: I-DAD
match:
  restarts: 5
  line_search: backtracking
output:
  format: YAML
`), 0o600))

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, 3, c.Dimension())
	assert.Equal(t, "I-DAD", c.LaplacianForm())
	assert.Equal(t, 5, c.Restarts())
	assert.Equal(t, "backtracking", c.LineSearch())
	assert.Equal(t, "yaml", c.OutputFormat())
	assert.Equal(t, 30, c.MaxIter(), "unset keys keep defaults")

	require.Error(t, NewConfig().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("GRAPHSTATS_MATCH_RESTARTS", "4")
	t.Setenv("GRAPHSTATS_NOMINATE_METRIC", "cosine")
	c := NewConfig()
	assert.Equal(t, 4, c.Restarts())
	assert.Equal(t, "cosine", c.Metric())
}

func TestConfig_CreateLogger(t *testing.T) {
	c := NewConfig()
	c.Set("logging.level", "warn")
	var buf bytes.Buffer
	log, runID := c.CreateLogger(&buf)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	assert.Len(t, runID, 36)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), runID)

	c.Set("logging.level", "nonsense")
	log, _ = c.CreateLogger(&buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
