package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/connect4-go/internal/factory"
	"github.com/mcoot/connect4-go/internal/model"
	"github.com/mcoot/connect4-go/internal/services/session"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a two-player game",
		Long: `Start a two-player game on this terminal.

Both players are asked for a color, which is shown in their tokens on the
grid. Players then alternate typing a column number (1-7).`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	addPlayerFlags(cmd)

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Interrupt ends the session like end of input does
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cfg, cmd.ErrOrStderr())
	app, err := factory.New(factory.Config{Logger: logger})
	if err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	console := NewConsole(cmd.InOrStdin(), out)
	defer console.Close()

	loop := session.NewLoop(app.GameController, console, out, session.Config{
		Player1: model.PlayerID(cfg.Player1),
		Player2: model.PlayerID(cfg.Player2),
	}, logger)

	game, err := loop.Run(ctx)
	if err != nil {
		return err
	}
	if game == nil {
		return nil
	}

	return app.GameController.EndGame(context.WithoutCancel(ctx), game.ID)
}
