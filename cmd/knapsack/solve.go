package main

import (
	"errors"
	"strings"

	"github.com/katalvlaran/knapsack/internal/argv"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSolveCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "solve <variant> <capacity> [capacity2|K] <n> <item>...",
		Short: "Solve one instance given as positional arguments",
		Long: `Solves one instance in the positional layout of the per-variant solvers.
Item tuples are comma separated:

  01, complete, count, kth   w,v
  multiple                   w,v,c
  2d                         w,m,v
  group                      w,v,g
  depend, tree               w,v,p
  mixed                      w,v,t[,c]

Fewer tuples than n is tolerated: the supplied ones are solved and a
warning is logged.`,
		Example: `  knapsack solve 01 10 4 2,3 3,4 4,5 5,6
  knapsack solve 2d 10 8 3 2,1,3 3,4,4 4,3,5
  knapsack solve --view kth 10 3 4 2,3 3,4 4,5 5,6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			v, err := knapsack.ParseVariant(strings.TrimPrefix(args[0], "knapsack_"))
			if err != nil {
				return out.fail(w, err.Error(), err)
			}

			p, err := argv.Decode(v, args[1:])
			var short *argv.ShortInputError
			switch {
			case errors.As(err, &short):
				a.zlog.Warn("fewer items than declared",
					zap.Int("declared", short.Declared),
					zap.Int("supplied", short.Supplied))
			case errors.Is(err, argv.ErrInsufficientArguments):
				return out.fail(w, "Insufficient parameters", err)
			case err != nil:
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

	return cmd
}
