package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahib855/8-puzzle/internal/ctxlog"
	"github.com/sahib855/8-puzzle/internal/render"
	"github.com/sahib855/8-puzzle/puzzle"
)

// Animation cadence for --animate, one frame per solution step.
const animateFrame = 400 * time.Millisecond

var (
	solveState   string
	solveGoal    string
	solveAnimate bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a board and print the solution path",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveState, "state", "s", "",
		`board as comma-separated tiles, e.g. "1,2,3,7,4,5,0,8,6" (0 is the blank)`)
	solveCmd.Flags().StringVar(&solveGoal, "goal", "",
		"goal board (default: tiles 1..8 in order, blank last)")
	solveCmd.Flags().BoolVar(&solveAnimate, "animate", false,
		"step through the solution path in the terminal")
	_ = solveCmd.MarkFlagRequired("state")
}

func runSolve(cmd *cobra.Command, args []string) error {
	start, err := puzzle.Parse(solveState)
	if err != nil {
		return err
	}
	goal := puzzle.Goal()
	if solveGoal != "" {
		if goal, err = puzzle.Parse(solveGoal); err != nil {
			return err
		}
	}

	ctx := ctxlog.WithLogger(cmd.Context(), slog.Default())
	outcome := <-puzzle.SolveAsync(ctx, start, goal)
	if outcome.Err != nil {
		return outcome.Err
	}

	result := outcome.Result
	switch result.Status {
	case puzzle.StatusUnsolvable:
		return errors.New("this puzzle configuration is unsolvable")
	case puzzle.StatusNoSolutionFound:
		return errors.New("search exhausted without reaching the goal; please report this board")
	}

	out := cmd.OutOrStdout()
	if solveAnimate {
		for step, state := range result.Path {
			fmt.Fprintln(out, render.Board(state))
			fmt.Fprintf(out, "step %d / %d\n\n", step, result.MoveCount)
			if step < result.MoveCount {
				time.Sleep(animateFrame)
			}
		}
	} else {
		fmt.Fprintln(out, render.Board(start))
		fmt.Fprintln(out, movesLine(result.Moves))
		fmt.Fprintln(out, render.Board(goal))
	}
	fmt.Fprintf(out, "solved in %d moves • explored %d nodes • %s\n",
		result.MoveCount, result.Explored, result.Elapsed.Round(time.Microsecond))
	return nil
}

func movesLine(moves []puzzle.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return "moves: " + strings.Join(parts, " ")
}
