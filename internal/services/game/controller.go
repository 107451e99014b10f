package game

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/connect4-go/internal/dependencies/clock"
	"github.com/mcoot/connect4-go/internal/dependencies/random"
	"github.com/mcoot/connect4-go/internal/model"
	"github.com/mcoot/connect4-go/internal/services/wincheck"
	"github.com/mcoot/connect4-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller runs moves against a game: validate, place, evaluate, advance
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateGame starts a new game on an empty grid with player1 to move
func (c *Controller) CreateGame(ctx context.Context, player1, player2 model.PlayerID) (*model.Game, error) {
	if err := ValidatePlayers(player1, player2); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))

	game := &model.Game{
		ID:        gameID,
		State:     model.GameStateInProgress,
		Grid:      model.NewGrid(),
		Turn:      model.NewTurn(player1, player2),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("player1", string(player1)),
		slog.String("player2", string(player2)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SubmitSelection plays a raw, 1-indexed column selection as typed by a player
func (c *Controller) SubmitSelection(ctx context.Context, gameID model.GameID, selection string) (*model.MoveResult, error) {
	col, err := ParseColumn(selection)
	if err != nil {
		return nil, err
	}
	return c.PlayMove(ctx, gameID, col)
}

// PlayMove drops the current player's token into the 0-indexed column.
// A rejected move leaves the grid and turn untouched.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, col int) (*model.MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}
	if !model.IsValidColumn(col) {
		return nil, model.ErrInvalidInput
	}
	if game.Grid.IsColumnFull(col) {
		return nil, model.ErrColumnFull
	}

	player := game.CurrentPlayer()
	row, err := game.Grid.DropToken(col, player)
	if err != nil {
		// Unreachable after the IsColumnFull check
		return nil, fmt.Errorf("place token for %s: %w", player, err)
	}

	pos := model.Position{Row: row, Col: col}
	game.MoveCount++
	game.LastMove = &pos
	game.UpdatedAt = c.clock.Now()

	c.logger.Debug("token dropped",
		slog.String("game_id", string(game.ID)),
		slog.String("player", string(player)),
		slog.Int("row", row),
		slog.Int("col", col),
	)

	outcome := c.evaluate(game, player)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return &model.MoveResult{
		Game:     game,
		Player:   player,
		Position: pos,
		Outcome:  outcome,
	}, nil
}

// evaluate decides the result of the move just made and ends or advances the game
func (c *Controller) evaluate(game *model.Game, player model.PlayerID) model.Outcome {
	if wincheck.FourInARow(game.Grid) {
		game.State = model.GameStateWon
		game.Winner = player
		c.logger.Info("game won",
			slog.String("game_id", string(game.ID)),
			slog.String("winner", string(player)),
			slog.Int("moves", game.MoveCount),
		)
		return model.OutcomeWin
	}

	if game.Grid.IsFull() {
		game.State = model.GameStateDrawn
		c.logger.Info("game drawn",
			slog.String("game_id", string(game.ID)),
			slog.Int("moves", game.MoveCount),
		)
		return model.OutcomeDraw
	}

	game.Turn.Advance()
	return model.OutcomeInProgress
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsComplete() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("moves", game.MoveCount),
	)

	return c.storage.SaveGame(ctx, game)
}

// EndGame removes a finished session from storage
func (c *Controller) EndGame(ctx context.Context, gameID model.GameID) error {
	return c.storage.DeleteGame(ctx, gameID)
}

// ParseColumn converts a 1-indexed column selection into a 0-indexed column.
// Surrounding whitespace is ignored; anything other than an integer in
// [1, Columns] is ErrInvalidInput.
func ParseColumn(selection string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	if n < 1 || n > model.Columns {
		return 0, model.ErrInvalidInput
	}
	return n - 1, nil
}

// ValidatePlayers checks that both identifiers are usable for one game
func ValidatePlayers(player1, player2 model.PlayerID) error {
	if err := ValidatePlayer(player1); err != nil {
		return err
	}
	if err := ValidatePlayer(player2); err != nil {
		return err
	}
	if player1 == player2 {
		return model.ErrDuplicatePlayer
	}
	return nil
}

// ValidatePlayer rejects empty identifiers. Any other string is a usable color.
func ValidatePlayer(player model.PlayerID) error {
	if player == "" {
		return model.ErrInvalidPlayer
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, player1, player2 model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitSelection(ctx context.Context, gameID model.GameID, selection string) (*model.MoveResult, error)
	PlayMove(ctx context.Context, gameID model.GameID, col int) (*model.MoveResult, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	EndGame(ctx context.Context, gameID model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
