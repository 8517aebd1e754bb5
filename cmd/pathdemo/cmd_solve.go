package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sayotte/pathstate/grid"
	"github.com/sayotte/pathstate/internal/logging"
	"github.com/sayotte/pathstate/planner"
)

type solveFlags struct {
	parallel int
	noRender bool
}

type solved struct {
	filename string
	m        *grid.Map
	sol      grid.Solution
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve MAP [MAP...]",
		Short: "Find the cheapest path from start to finish on each map",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, flags)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&flags.parallel, "parallel", "p", 4, "Maps solved at the same time")
	f.BoolVar(&flags.noRender, "no-render", false, "Print only the summary line for each map")
	return cmd
}

// runSolve gives every map its own search state, so maps can be solved
// concurrently without sharing anything.
func runSolve(cmd *cobra.Command, filenames []string, flags solveFlags) error {
	logger := logging.New("solve")
	results := make([]solved, len(filenames))

	g, ctx := errgroup.WithContext(cmd.Context())
	if flags.parallel > 0 {
		g.SetLimit(flags.parallel)
	}
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			m, err := grid.LoadMap(filename)
			if err != nil {
				return err
			}
			sol, err := grid.ComputePath(ctx, m, planner.WithLogger(logger.With("map", filename)))
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			results[i] = solved{filename: filename, m: m, sol: sol}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		printSolved(out, r, !flags.noRender)
	}
	return nil
}

func printSolved(out io.Writer, r solved, render bool) {
	if !r.sol.Found() {
		fmt.Fprintf(out, "%s: no path (expansions=%d)\n", r.filename, r.sol.Expansions)
		if render {
			fmt.Fprint(out, grid.Render(r.m, nil))
		}
		return
	}
	path := r.sol.Goal.Path()
	fmt.Fprintf(out, "%s: cost=%.3f steps=%d expansions=%d\n",
		r.filename, r.sol.Goal.PreviousCost(), len(path)-1, r.sol.Expansions)
	if render {
		fmt.Fprint(out, grid.Render(r.m, path))
	}
}
