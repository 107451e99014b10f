package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GridSuite struct {
	suite.Suite
	grid *Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	s.grid = NewGrid()
}

// fillColumn drops n tokens into col, alternating between two players
func (s *GridSuite) fillColumn(col, n int) {
	players := []PlayerID{"red", "yellow"}
	for i := 0; i < n; i++ {
		_, err := s.grid.DropToken(col, players[i%2])
		s.Require().NoError(err)
	}
}

// NewGrid tests

func (s *GridSuite) TestNewGridIsEmpty() {
	s.Equal(0, s.grid.TokenCount())
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			s.True(s.grid.Cell(row, col).IsEmpty())
		}
	}
	s.False(s.grid.IsFull())
}

// DropToken tests

func (s *GridSuite) TestDropTokenFillsBottomUp() {
	for col := 0; col < Columns; col++ {
		for k := 0; k < Rows; k++ {
			row, err := s.grid.DropToken(col, "red")
			s.Require().NoError(err)
			s.Equal(BottomRow-k, row)
			s.True(s.grid.Cell(BottomRow-k, col).OwnedBy("red"))
		}
	}
}

func (s *GridSuite) TestDropTokenOnlyMutatesOneCell() {
	_, _ = s.grid.DropToken(3, "red")
	before := s.grid.Clone()

	_, err := s.grid.DropToken(3, "yellow")
	s.Require().NoError(err)

	s.Equal(before.TokenCount()+1, s.grid.TokenCount())
	s.True(s.grid.Cell(BottomRow, 3).OwnedBy("red"))
	s.True(s.grid.Cell(BottomRow-1, 3).OwnedBy("yellow"))
}

func (s *GridSuite) TestDropTokenFullColumn() {
	s.fillColumn(2, Rows)
	before := s.grid.Clone()

	_, err := s.grid.DropToken(2, "red")
	s.ErrorIs(err, ErrColumnFull)
	s.Equal(*before, *s.grid)
}

func (s *GridSuite) TestDropTokenOutOfRange() {
	_, err := s.grid.DropToken(-1, "red")
	s.ErrorIs(err, ErrColumnOutOfRange)

	_, err = s.grid.DropToken(Columns, "red")
	s.ErrorIs(err, ErrColumnOutOfRange)

	s.Equal(0, s.grid.TokenCount())
}

// IsColumnFull tests

func (s *GridSuite) TestIsColumnFullAfterExactlySixDrops() {
	for k := 0; k < Rows; k++ {
		s.False(s.grid.IsColumnFull(4), "column full after %d drops", k)
		s.fillColumn(4, 1)
	}
	s.True(s.grid.IsColumnFull(4))
	s.Equal(Rows, s.grid.ColumnHeight(4))
}

func (s *GridSuite) TestColumnHeight() {
	s.Equal(0, s.grid.ColumnHeight(0))
	s.fillColumn(0, 3)
	s.Equal(3, s.grid.ColumnHeight(0))
	s.Equal(0, s.grid.ColumnHeight(1))
}

// IsFull tests

func (s *GridSuite) TestIsFullWhenAllColumnsFull() {
	for col := 0; col < Columns; col++ {
		s.fillColumn(col, Rows)
	}
	s.True(s.grid.IsFull())
	s.Equal(Rows*Columns, s.grid.TokenCount())
}

func (s *GridSuite) TestIsFullFalseWithOneOpenTopCell() {
	for col := 0; col < Columns; col++ {
		n := Rows
		if col == 5 {
			n = Rows - 1
		}
		s.fillColumn(col, n)
	}
	s.False(s.grid.IsFull())
	s.Equal(Rows*Columns-1, s.grid.TokenCount())
}

// Read helper tests

func (s *GridSuite) TestCellOutOfBoundsIsEmpty() {
	s.True(s.grid.Cell(-1, 0).IsEmpty())
	s.True(s.grid.Cell(0, Columns).IsEmpty())
	s.True(s.grid.Cell(Rows, 0).IsEmpty())
}

func (s *GridSuite) TestOccupants() {
	_, _ = s.grid.DropToken(0, "red")
	_, _ = s.grid.DropToken(6, "yellow")

	occupants := s.grid.Occupants()
	s.Len(occupants, Rows)
	s.Len(occupants[0], Columns)
	s.Equal("red", occupants[BottomRow][0])
	s.Equal("yellow", occupants[BottomRow][6])
	s.Equal("", occupants[TopRow][0])
}

func (s *GridSuite) TestCloneIsIndependent() {
	clone := s.grid.Clone()
	_, _ = clone.DropToken(0, "red")

	s.Equal(0, s.grid.TokenCount())
	s.Equal(1, clone.TokenCount())
}

// Cell tests

func (s *GridSuite) TestCellVariants() {
	empty := EmptyCell()
	s.True(empty.IsEmpty())
	_, ok := empty.Occupant()
	s.False(ok)
	s.False(empty.OwnedBy(""))

	red := OccupiedBy("red")
	s.False(red.IsEmpty())
	occupant, ok := red.Occupant()
	s.True(ok)
	s.Equal(PlayerID("red"), occupant)
	s.True(red.OwnedBy("red"))
	s.False(red.OwnedBy("yellow"))
}

// Turn tests

func (s *GridSuite) TestTurnStartsWithPlayerOneAndAlternates() {
	turn := NewTurn("red", "yellow")
	s.Equal(PlayerID("red"), turn.CurrentPlayer())
	s.Equal(PlayerID("yellow"), turn.Other())

	turn.Advance()
	s.Equal(PlayerID("yellow"), turn.CurrentPlayer())

	turn.Advance()
	s.Equal(PlayerID("red"), turn.CurrentPlayer())
}
