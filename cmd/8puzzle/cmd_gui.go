package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sahib855/8-puzzle/internal/ctxlog"
	"github.com/sahib855/8-puzzle/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play on a clickable window",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ctxlog.WithLogger(cmd.Context(), slog.Default())
		ui.Run(ctx)
		return nil
	},
}
