package main

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/tree"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	cfgPath string
	cfg     *config.Config
	zlog    *zap.Logger
	log     logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve knapsack problem variants and print the DP trace",
		Long: `Solves ten knapsack variants (0/1, complete, multiple, 2D cost, group,
dependency, mixed, counting, K-th optimal and tree) and prints the full
DP history as JSON, or a terminal table with --view.

Configuration is read from config.yaml (or --config), KNAPSACK_* environment
variables and flags, later sources winning.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.zlog != nil {
				_ = a.zlog.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ./config.yaml if present)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Bool("dev", false, "development logging (console encoder)")
	pf.Int("max-attachments", expand.DefaultMaxAttachments, "attachment ceiling per main item (depend)")
	pf.String("traversal", "recursive", "tree walk: recursive or iterative")
	pf.Int("max-depth", tree.DefaultMaxDepth, "deepest forest the recursive tree walk accepts")
	pf.Bool("subtree-bound", false, "clip tree child loops to subtree weight")
	pf.Bool("trace", true, "record the per-cell step history")

	cmd.AddCommand(
		newSolveCmd(a),
		newRunCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newVariantsCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	z, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.zlog = z
	a.log = logging.Logr(z)

	return nil
}

// solve runs one instance with the configured solver options.
func (a *app) solve(cmd *cobra.Command, p knapsack.Problem) (*knapsack.Result, error) {
	opts := append(a.cfg.Solver.Options(), knapsack.WithContext(cmd.Context()), knapsack.WithLogger(a.log))

	start := time.Now()
	res, err := knapsack.Solve(p, opts...)
	if err != nil {
		a.zlog.Debug("solve failed", zap.String("variant", p.Variant.String()), zap.Error(err))
		return nil, err
	}
	a.zlog.Debug("solved",
		zap.String("variant", p.Variant.String()),
		zap.Int("value", res.Value),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}
