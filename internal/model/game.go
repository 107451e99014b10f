package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Waiting for the next move
	GameStateWon        GameState = "won"         // A player connected four
	GameStateDrawn      GameState = "drawn"       // Grid filled with no winner
	GameStateAbandoned  GameState = "abandoned"   // Session ended before a result
)

// Game is a single two-player session
type Game struct {
	ID    GameID
	State GameState

	Grid *Grid
	Turn Turn

	Winner    PlayerID  // Empty unless State is won
	MoveCount int       // Tokens placed so far
	LastMove  *Position // Nil until the first move

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsComplete returns true once the game accepts no further moves
func (g *Game) IsComplete() bool {
	return g.State != GameStateInProgress
}

// CurrentPlayer returns the player whose move it is
func (g *Game) CurrentPlayer() PlayerID {
	return g.Turn.CurrentPlayer()
}
