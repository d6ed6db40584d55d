package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sahib855/8-puzzle/internal/render"
	"github.com/sahib855/8-puzzle/puzzle"
)

var shuffleSteps int

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a scrambled, always-solvable board",
	RunE:  runShuffle,
}

func init() {
	shuffleCmd.Flags().IntVarP(&shuffleSteps, "steps", "n", 30,
		"number of random valid moves to scramble with")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	state, err := puzzle.Shuffle(shuffleSteps, nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Board(state))
	fmt.Fprintf(out, "state: %s\n", render.Line(state))
	return nil
}
