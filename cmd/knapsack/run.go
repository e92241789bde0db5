package main

import (
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		out  outputFlags
		file string
	)

	cmd := &cobra.Command{
		Use:   "run -f <request.json|request.yaml>",
		Short: "Solve one request document",
		Long: `Solves one request document of the form

  {"algorithm": "knapsack_01", "params": {"capacity": 10, "items": [...]}}

in JSON or YAML, chosen by the file extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			doc, err := request.ReadFile(file)
			if err != nil {
				return out.fail(w, err.Error(), err)
			}
			p, err := doc.Problem()
			if err != nil {
				return out.fail(w, err.Error(), err)
			}
			res, err := a.solve(cmd, p)
			if err != nil {
				return out.fail(w, err.Error(), err)
			}

			return out.emit(w, res)
		},
	}
	out.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "request document")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
