package model

// Turn tracks the two players of a game and whose move it is
type Turn struct {
	Player1 PlayerID
	Player2 PlayerID
	Current PlayerID
}

// NewTurn starts a turn sequence with player1 to move
func NewTurn(player1, player2 PlayerID) Turn {
	return Turn{
		Player1: player1,
		Player2: player2,
		Current: player1,
	}
}

// CurrentPlayer returns the player whose move it is
func (t Turn) CurrentPlayer() PlayerID {
	return t.Current
}

// Other returns the player who is not currently on move
func (t Turn) Other() PlayerID {
	if t.Current == t.Player1 {
		return t.Player2
	}
	return t.Player1
}

// Advance passes the move to the other player
func (t *Turn) Advance() {
	t.Current = t.Other()
}
