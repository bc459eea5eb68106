// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages CLI configuration using Viper. Precedence, highest first:
// explicit flags, GRAPHSTATS_* environment variables, the --config file, defaults.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("random.seed", int64(1))

	// Embedding parameters
	v.SetDefault("embed.method", "ase")
	v.SetDefault("embed.dimension", 0)
	v.SetDefault("embed.algorithm", "auto")
	v.SetDefault("embed.form", "DAD")
	v.SetDefault("embed.diag_aug", false)
	v.SetDefault("embed.row_normalize", false)

	// Nomination parameters
	v.SetDefault("nominate.metric", "euclidean")
	v.SetDefault("nominate.k", 10)
	v.SetDefault("nominate.index_threshold", 256)

	// Matching parameters
	v.SetDefault("match.max_iter", 30)
	v.SetDefault("match.tolerance", 0.01)
	v.SetDefault("match.restarts", 1)
	v.SetDefault("match.init", "barycenter")
	v.SetDefault("match.line_search", "exact")

	// Logging and output
	v.SetDefault("logging.level", "info")
	v.SetDefault("output.format", "json")

	v.SetEnvPrefix("GRAPHSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) Seed() int64 { return c.v.GetInt64("random.seed") }

func (c *Config) EmbedMethod() string   { return c.v.GetString("embed.method") }
func (c *Config) Dimension() int        { return c.v.GetInt("embed.dimension") }
func (c *Config) Algorithm() string     { return c.v.GetString("embed.algorithm") }
func (c *Config) LaplacianForm() string { return c.v.GetString("embed.form") }
func (c *Config) DiagAug() bool         { return c.v.GetBool("embed.diag_aug") }
func (c *Config) RowNormalize() bool    { return c.v.GetBool("embed.row_normalize") }

func (c *Config) Metric() string      { return c.v.GetString("nominate.metric") }
func (c *Config) K() int              { return c.v.GetInt("nominate.k") }
func (c *Config) IndexThreshold() int { return c.v.GetInt("nominate.index_threshold") }

func (c *Config) MaxIter() int         { return c.v.GetInt("match.max_iter") }
func (c *Config) Tolerance() float64   { return c.v.GetFloat64("match.tolerance") }
func (c *Config) Restarts() int        { return c.v.GetInt("match.restarts") }
func (c *Config) Init() string         { return c.v.GetString("match.init") }
func (c *Config) LineSearch() string   { return c.v.GetString("match.line_search") }
func (c *Config) LogLevel() string     { return c.v.GetString("logging.level") }
func (c *Config) OutputFormat() string { return strings.ToLower(c.v.GetString("output.format")) }

// CreateLogger creates a console logger tagged with a fresh run id.
func (c *Config) CreateLogger(w io.Writer) (zerolog.Logger, string) {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	runID := uuid.NewString()

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "graphstats").Str("run_id", runID).Logger(), runID
}
