package model

// Cell is a single grid position: either empty or occupied by a player
type Cell struct {
	occupant PlayerID
	occupied bool
}

// EmptyCell returns an unoccupied cell
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedBy returns a cell holding the given player's token
func OccupiedBy(player PlayerID) Cell {
	return Cell{occupant: player, occupied: true}
}

// IsEmpty returns true if no token has been placed in the cell
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Occupant returns the owning player, and false if the cell is empty
func (c Cell) Occupant() (PlayerID, bool) {
	return c.occupant, c.occupied
}

// OwnedBy returns true if the cell holds the given player's token
func (c Cell) OwnedBy(player PlayerID) bool {
	return c.occupied && c.occupant == player
}

// String returns the occupant, or an empty string for an empty cell
func (c Cell) String() string {
	return string(c.occupant)
}
