package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sahib855/8-puzzle/internal/ctxlog"
	"github.com/sahib855/8-puzzle/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play on an interactive terminal board",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ctxlog.WithLogger(cmd.Context(), slog.Default())
		return tui.Run(ctx)
	},
}
