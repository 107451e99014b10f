package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Two-player connect four in the terminal",
		Long: `connect4 is a two-player console game.

Players take turns dropping tokens into a 6x7 grid by typing a column
number (1-7). The first player to line up four tokens horizontally,
vertically or diagonally wins. Running connect4 with no subcommand
starts a game.

Press Ctrl+D or Ctrl+C to quit.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: CONNECT4_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging on stderr (env: CONNECT4_VERBOSE)")
	addPlayerFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlayerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfg.Player1, "player1", cfg.Player1, "Player 1 color, skips the prompt (env: CONNECT4_PLAYER1)")
	cmd.Flags().StringVar(&cfg.Player2, "player2", cfg.Player2, "Player 2 color, skips the prompt (env: CONNECT4_PLAYER2)")
}

func invalidFlag(name, value string, allowed ...string) error {
	return fmt.Errorf("invalid %s %q: must be one of %v", name, value, allowed)
}
