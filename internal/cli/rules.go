package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-go/internal/model"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(currentRules())
			return nil
		},
	}
}

func currentRules() Rules {
	return Rules{
		Rows:    model.Rows,
		Columns: model.Columns,
		Connect: model.WinLength,
		Rules: []string{
			"Player 1 moves first, then players alternate.",
			fmt.Sprintf("On your turn, type a column number from 1 to %d.", model.Columns),
			"Your token falls to the lowest empty cell of that column.",
			"A full column cannot be played; choose another one.",
			fmt.Sprintf("Line up %d of your tokens horizontally, vertically or diagonally to win.", model.WinLength),
			"If the grid fills up with no winner, the game is a draw.",
		},
	}
}
