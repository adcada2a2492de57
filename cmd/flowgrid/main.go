// Command flowgrid solves connection puzzles from grid definition files
// and prints the result on the terminal.
//
// Usage:
//
//	flowgrid solve puzzle.yaml [--verbose] [--timeout 30s] [--max-iterations 100]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/render"
	"github.com/katalvlaran/flowgrid/solve"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flowgrid",
		Short:         "SAT-based connection-puzzle solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		verbose       bool
		timeout       time.Duration
		maxIterations int
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the puzzle defined in FILE and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			p, err := puzzle.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Puzzle:")
			if err = render.Puzzle(out, p); err != nil {
				return err
			}

			opts := solve.DefaultOptions()
			opts.Log = log
			opts.MaxIterations = maxIterations
			if timeout > 0 {
				var cancel context.CancelFunc
				opts.Ctx, cancel = context.WithTimeout(context.Background(), timeout)
				defer cancel()
			}

			start := time.Now()
			solution, err := solve.Solve(p, opts)
			log.WithField("elapsed", time.Since(start)).Debug("solve finished")
			if errors.Is(err, solve.ErrUnsatisfiable) {
				fmt.Fprintln(out, "No solution")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Solution:")

			return render.Solution(out, solution)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log refinement progress")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort solving after this duration (0 = no limit)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "refinement iteration budget (0 = no limit)")
	return cmd
}
