package model

// Outcome is the result of a single accepted move
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWin        Outcome = "win"
	OutcomeDraw       Outcome = "draw"
)

// MoveResult describes an accepted move and where it left the game
type MoveResult struct {
	Game     *Game
	Player   PlayerID // Player who made the move
	Position Position // Cell the token settled in
	Outcome  Outcome
}

// IsTerminal returns true if the move ended the game
func (r *MoveResult) IsTerminal() bool {
	return r.Outcome != OutcomeInProgress
}
