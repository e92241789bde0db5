package main

import (
	"github.com/katalvlaran/knapsack/internal/batch"
	"github.com/katalvlaran/knapsack/internal/render"
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		file   string
		indent bool
	)

	cmd := &cobra.Command{
		Use:   "batch -f <batch.yaml|batch.json>",
		Short: "Solve a batch of request documents concurrently",
		Long: `Solves every document under "requests" with a bounded worker pool and
prints one JSON document whose "results" keep the input order. A failing
request yields an error entry without stopping the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := request.ReadBatchFile(file)
			if err != nil {
				return err
			}

			workers := a.cfg.Batch.Workers
			if b.Workers > 0 {
				workers = b.Workers
			}
			runner := batch.NewRunner(workers, a.log, a.cfg.Solver.Options()...)
			a.zlog.Info("batch started", zap.Int("requests", len(b.Requests)), zap.Int("workers", runner.Workers()))

			out, err := runner.RunDocuments(cmd.Context(), b.Requests)
			if err != nil {
				return err
			}

			if indent {
				return render.WriteIndent(cmd.OutOrStdout(), out)
			}
			return render.Write(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "batch file")
	cmd.Flags().Int("workers", 4, "concurrent solves")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
