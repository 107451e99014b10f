package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/connect4-go/internal/model"
	"github.com/mcoot/connect4-go/internal/services/game"
)

// Messages shown to the players
const (
	MsgInvalidInput = "Invalid input"
	MsgColumnFull   = "Column is full, please try again"
	MsgDraw         = "DRAW - TIE - CATS GAME"
	MsgFarewell     = "GG!"
	MsgColorEmpty   = "Color must not be empty"
	MsgColorTaken   = "Color already taken"
)

// State is a phase of the session state machine
type State string

const (
	StateAwaitingPlayerSetup State = "awaiting_player_setup"
	StateAwaitingMove        State = "awaiting_move"
	StateTerminal            State = "terminal"
)

// Prompter reads one line of player input. Returning io.EOF or a context
// error ends the session.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// Display shows the grid and messages to the players
type Display interface {
	ShowGrid(grid *model.Grid)
	ShowMessage(msg string)
}

// Config holds optional settings for a session
type Config struct {
	// Player1 and Player2 skip the setup prompt for that player when set
	Player1 model.PlayerID
	Player2 model.PlayerID
}

// Loop drives a single game from player setup to a result
type Loop struct {
	games    game.ControllerInterface
	prompter Prompter
	display  Display
	cfg      Config
	logger   *slog.Logger

	state State
}

// NewLoop creates a session loop
func NewLoop(games game.ControllerInterface, prompter Prompter, display Display, cfg Config, logger *slog.Logger) *Loop {
	return &Loop{
		games:    games,
		prompter: prompter,
		display:  display,
		cfg:      cfg,
		logger:   logger,
		state:    StateAwaitingPlayerSetup,
	}
}

// State returns the current phase of the session
func (l *Loop) State() State {
	return l.state
}

// Run plays one game. It returns the final game, which is nil if the session
// ended during setup. End of input is not an error: the game is abandoned
// and the farewell shown.
func (l *Loop) Run(ctx context.Context) (*model.Game, error) {
	defer l.display.ShowMessage(MsgFarewell)

	g, err := l.setup(ctx)
	if err != nil {
		l.state = StateTerminal
		if isTermination(err) {
			return nil, nil
		}
		return nil, err
	}

	for l.state == StateAwaitingMove {
		selection, err := l.prompter.Prompt(ctx, fmt.Sprintf("%s- select a column: ", g.CurrentPlayer()))
		if err != nil {
			return l.terminate(ctx, g, err)
		}

		result, err := l.games.SubmitSelection(ctx, g.ID, selection)
		switch {
		case errors.Is(err, model.ErrInvalidInput):
			l.display.ShowMessage(MsgInvalidInput)
			continue
		case errors.Is(err, model.ErrColumnFull):
			l.display.ShowMessage(MsgColumnFull)
			continue
		case err != nil:
			l.state = StateTerminal
			return g, err
		}

		g = result.Game
		l.display.ShowGrid(g.Grid)

		switch result.Outcome {
		case model.OutcomeWin:
			l.display.ShowMessage(fmt.Sprintf("%s wins!", result.Player))
			l.state = StateTerminal
		case model.OutcomeDraw:
			l.display.ShowMessage(MsgDraw)
			l.state = StateTerminal
		}
	}

	return g, nil
}

// setup collects both player identifiers and starts the game
func (l *Loop) setup(ctx context.Context) (*model.Game, error) {
	player1, err := l.collectPlayer(ctx, l.cfg.Player1, "Enter in player 1's color: ", l.cfg.Player2)
	if err != nil {
		return nil, err
	}
	player2, err := l.collectPlayer(ctx, l.cfg.Player2, "Enter in player 2's color: ", player1)
	if err != nil {
		return nil, err
	}

	g, err := l.games.CreateGame(ctx, player1, player2)
	if err != nil {
		return nil, err
	}

	l.state = StateAwaitingMove
	l.display.ShowGrid(g.Grid)
	return g, nil
}

// collectPlayer prompts until a usable identifier other than taken is entered.
// A preset identifier is used as-is; taken is empty when the other player is
// still unknown.
func (l *Loop) collectPlayer(ctx context.Context, preset model.PlayerID, prompt string, taken model.PlayerID) (model.PlayerID, error) {
	if preset != "" {
		return preset, nil
	}
	for {
		line, err := l.prompter.Prompt(ctx, prompt)
		if err != nil {
			return "", err
		}
		player := model.PlayerID(line)

		err = game.ValidatePlayer(player)
		if err == nil && taken != "" && player == taken {
			err = model.ErrDuplicatePlayer
		}
		switch {
		case errors.Is(err, model.ErrInvalidPlayer):
			l.display.ShowMessage(MsgColorEmpty)
		case errors.Is(err, model.ErrDuplicatePlayer):
			l.display.ShowMessage(MsgColorTaken)
		default:
			return player, nil
		}
	}
}

// terminate handles the end of input in the middle of a game
func (l *Loop) terminate(ctx context.Context, g *model.Game, cause error) (*model.Game, error) {
	l.state = StateTerminal
	if !isTermination(cause) {
		return g, cause
	}

	// The abandon must still land when ctx itself was cancelled
	if err := l.games.AbandonGame(context.WithoutCancel(ctx), g.ID); err != nil {
		return g, err
	}

	l.logger.Debug("session terminated",
		slog.String("game_id", string(g.ID)),
		slog.String("cause", cause.Error()),
	)
	return g, nil
}

func isTermination(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
