package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/knapsack/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/solve and /v1/batch over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg, a.log).Run(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")

	return cmd
}
