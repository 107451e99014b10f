// Package wincheck scans a grid for four same-owner tokens in a line.
//
// Every scan is a full pass over the grid; nothing is cached between moves.
package wincheck

import "github.com/mcoot/connect4-go/internal/model"

// direction is a step between consecutive cells of a window
type direction struct {
	dRow int
	dCol int
}

var (
	right     = direction{dRow: 0, dCol: 1}
	down      = direction{dRow: 1, dCol: 0}
	downRight = direction{dRow: 1, dCol: 1}
	downLeft  = direction{dRow: 1, dCol: -1}
)

// FourInARow returns true if any horizontal, vertical or diagonal window
// holds four tokens of the same player
func FourInARow(grid *model.Grid) bool {
	return Horizontal(grid) ||
		Vertical(grid) ||
		DiagonalDownRight(grid) ||
		DiagonalDownLeft(grid)
}

// Horizontal checks the four windows starting at columns 0-3 of every row
func Horizontal(grid *model.Grid) bool {
	for row := 0; row < model.Rows; row++ {
		for col := 0; col <= model.Columns-model.WinLength; col++ {
			if windowMatches(grid, row, col, right) {
				return true
			}
		}
	}
	return false
}

// Vertical checks the three windows starting at rows 0-2 of every column
func Vertical(grid *model.Grid) bool {
	for col := 0; col < model.Columns; col++ {
		for row := 0; row <= model.Rows-model.WinLength; row++ {
			if windowMatches(grid, row, col, down) {
				return true
			}
		}
	}
	return false
}

// DiagonalDownRight checks the twelve windows running from top-left to bottom-right
func DiagonalDownRight(grid *model.Grid) bool {
	// only the left 4 columns and top 3 rows can start one
	for col := 0; col <= model.Columns-model.WinLength; col++ {
		for row := 0; row <= model.Rows-model.WinLength; row++ {
			if windowMatches(grid, row, col, downRight) {
				return true
			}
		}
	}
	return false
}

// DiagonalDownLeft checks the twelve windows running from top-right to bottom-left
func DiagonalDownLeft(grid *model.Grid) bool {
	// columns are counted in from the right edge: 6, 5, 4, 3
	for offset := 0; offset <= model.Columns-model.WinLength; offset++ {
		col := model.Columns - 1 - offset
		for row := 0; row <= model.Rows-model.WinLength; row++ {
			if windowMatches(grid, row, col, downLeft) {
				return true
			}
		}
	}
	return false
}

// windowMatches reports whether the WinLength cells from (row, col) along dir
// are all occupied by one player
func windowMatches(grid *model.Grid, row, col int, dir direction) bool {
	first, ok := grid.Cell(row, col).Occupant()
	if !ok {
		return false
	}
	for i := 1; i < model.WinLength; i++ {
		if !grid.Cell(row+i*dir.dRow, col+i*dir.dCol).OwnedBy(first) {
			return false
		}
	}
	return true
}
