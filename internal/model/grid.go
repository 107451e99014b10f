package model

import "fmt"

// Grid dimensions are fixed
const (
	Rows      = 6
	Columns   = 7
	WinLength = 4

	TopRow    = 0
	BottomRow = Rows - 1
)

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Grid is the 6x7 playing field. Row 0 is the top, column 0 the leftmost.
//
// Tokens placed through DropToken always settle on the lowest empty row, so
// within a column occupied cells are contiguous from the bottom.
type Grid struct {
	cells [Rows][Columns]Cell
}

// NewGrid creates a grid with all cells empty
func NewGrid() *Grid {
	return &Grid{}
}

// NewGridFromCells builds a grid from an explicit cell layout.
// No gravity check is applied; this is meant for fixtures.
func NewGridFromCells(cells [Rows][Columns]Cell) *Grid {
	return &Grid{cells: cells}
}

// Cell returns the cell at the given position, or an empty cell if out of bounds
func (g *Grid) Cell(row, col int) Cell {
	if !IsValidPosition(Position{Row: row, Col: col}) {
		return EmptyCell()
	}
	return g.cells[row][col]
}

// IsValidColumn returns true if col is a 0-indexed column on the grid
func IsValidColumn(col int) bool {
	return col >= 0 && col < Columns
}

// IsValidPosition returns true if the position is within bounds
func IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Rows && IsValidColumn(pos.Col)
}

// IsColumnFull returns true if the top cell of the column is occupied
func (g *Grid) IsColumnFull(col int) bool {
	return !g.cells[TopRow][col].IsEmpty()
}

// ColumnHeight returns the number of tokens in the column
func (g *Grid) ColumnHeight(col int) int {
	height := 0
	for row := BottomRow; row >= TopRow; row-- {
		if g.cells[row][col].IsEmpty() {
			break
		}
		height++
	}
	return height
}

// DropToken places the player's token on the lowest empty cell of the column
// and returns the row it landed on. The caller must check IsColumnFull first;
// dropping into a full or unknown column is a programming error.
func (g *Grid) DropToken(col int, player PlayerID) (int, error) {
	if !IsValidColumn(col) {
		return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnOutOfRange)
	}
	for row := BottomRow; row >= TopRow; row-- {
		if g.cells[row][col].IsEmpty() {
			g.cells[row][col] = OccupiedBy(player)
			return row, nil
		}
	}
	return -1, fmt.Errorf("drop into column %d: %w", col, ErrColumnFull)
}

// IsFull returns true if every column is full
func (g *Grid) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if !g.IsColumnFull(col) {
			return false
		}
	}
	return true
}

// TokenCount returns the number of occupied cells
func (g *Grid) TokenCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if !g.cells[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// Occupants returns the grid as rows of player identifiers, "" for empty cells
func (g *Grid) Occupants() [][]string {
	result := make([][]string, Rows)
	for row := 0; row < Rows; row++ {
		result[row] = make([]string, Columns)
		for col := 0; col < Columns; col++ {
			result[row][col] = g.cells[row][col].String()
		}
	}
	return result
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}
