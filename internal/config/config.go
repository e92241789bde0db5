// Package config loads runtime settings from an optional YAML file, the
// environment (KNAPSACK_ prefix) and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/tree"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: solver.max_attachments
// is read from KNAPSACK_SOLVER_MAX_ATTACHMENTS.
const EnvPrefix = "KNAPSACK"

// Config holds all configuration for the application
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Solver SolverConfig `mapstructure:"solver"`
	Server ServerConfig `mapstructure:"server"`
	Batch  BatchConfig  `mapstructure:"batch"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// SolverConfig maps onto knapsack and tree options.
type SolverConfig struct {
	MaxAttachments int    `mapstructure:"max_attachments" validate:"gte=1,lte=30"`
	TreeTraversal  string `mapstructure:"tree_traversal" validate:"oneof=recursive iterative"`
	TreeMaxDepth   int    `mapstructure:"tree_max_depth" validate:"gte=1"`
	SubtreeBound   bool   `mapstructure:"subtree_bound"`
	RecordTrace    bool   `mapstructure:"record_trace"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr         string `mapstructure:"addr" validate:"required"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"gt=0"`
}

// BatchConfig sizes the batch worker pool.
type BatchConfig struct {
	Workers int `mapstructure:"workers" validate:"gte=1"`
}

var validate = validator.New()

// Load reads configuration. path may be empty, in which case config.yaml
// is looked up in the working directory and a missing file is not an
// error. Environment variables override the file; flags in fs (may be nil)
// override both when they were set explicitly.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("solver.max_attachments", expand.DefaultMaxAttachments)
	v.SetDefault("solver.tree_traversal", "recursive")
	v.SetDefault("solver.tree_max_depth", tree.DefaultMaxDepth)
	v.SetDefault("solver.subtree_bound", false)
	v.SetDefault("solver.record_trace", true)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 8<<20)

	v.SetDefault("batch.workers", 4)
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"dev":             "log.development",
	"max-attachments": "solver.max_attachments",
	"traversal":       "solver.tree_traversal",
	"max-depth":       "solver.tree_max_depth",
	"subtree-bound":   "solver.subtree_bound",
	"trace":           "solver.record_trace",
	"addr":            "server.addr",
	"workers":         "batch.workers",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Traversal returns the configured tree traversal.
func (c SolverConfig) Traversal() tree.Traversal {
	if c.TreeTraversal == "iterative" {
		return tree.Iterative
	}

	return tree.Recursive
}

// Options translates the solver settings into knapsack options.
func (c SolverConfig) Options() []knapsack.Option {
	topts := []tree.Option{tree.WithTraversal(c.Traversal()), tree.WithMaxDepth(c.TreeMaxDepth)}
	if c.SubtreeBound {
		topts = append(topts, tree.WithSubtreeBound())
	}

	return []knapsack.Option{
		knapsack.WithTrace(c.RecordTrace),
		knapsack.WithMaxAttachments(c.MaxAttachments),
		knapsack.WithTreeOptions(topts...),
	}
}
