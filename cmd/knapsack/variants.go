package main

import (
	"fmt"

	"github.com/katalvlaran/knapsack/internal/argv"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the supported variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, v := range knapsack.Variants() {
				if _, err := fmt.Fprintf(w, "%-9s %-20s %d header args\n", v, v.Title(), argv.Header(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
