package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: red stacks column 1 while yellow is forced to play elsewhere
func (s *IntegrationSuite) TestRedWinsColumnOne() {
	s.app.MockRandom.QueueString("GAME01")

	game, err := s.app.GameController.CreateGame(s.ctx, "red", "yellow")
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), game.ID)

	moves := []struct {
		selection string
		player    model.PlayerID
	}{
		{"1", "red"}, {"2", "yellow"},
		{"1", "red"}, {"3", "yellow"},
		{"1", "red"}, {"2", "yellow"},
	}
	for _, m := range moves {
		s.app.MockClock.Advance(time.Second)
		result, err := s.app.GameController.SubmitSelection(s.ctx, game.ID, m.selection)
		s.Require().NoError(err)
		s.Equal(m.player, result.Player)
		s.Equal(model.OutcomeInProgress, result.Outcome)
	}

	// Red's 4th token in column 1 lands on row 2, completing the column run
	result, err := s.app.GameController.SubmitSelection(s.ctx, game.ID, "1")
	s.Require().NoError(err)
	s.Equal(model.OutcomeWin, result.Outcome)
	s.Equal(model.Position{Row: 2, Col: 0}, result.Position)

	stored, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, stored.State)
	s.Equal(model.PlayerID("red"), stored.Winner)
	s.Equal(s.app.MockClock.Now(), stored.UpdatedAt)

	// Terminal: nothing more is accepted
	_, err = s.app.GameController.SubmitSelection(s.ctx, game.ID, "4")
	s.ErrorIs(err, model.ErrGameComplete)
}

// Test: the whole grid fills without a line of four
func (s *IntegrationSuite) TestFullGridIsADraw() {
	s.app.MockRandom.QueueString("GAME02")
	game, err := s.app.GameController.CreateGame(s.ctx, "red", "yellow")
	s.Require().NoError(err)

	var result *model.MoveResult
	for _, ch := range "311111122222233333444444755555566666677777" {
		result, err = s.app.GameController.SubmitSelection(s.ctx, game.ID, string(ch))
		s.Require().NoError(err)
		s.NotEqual(model.OutcomeWin, result.Outcome)
	}

	s.Equal(model.OutcomeDraw, result.Outcome)
	s.Equal(model.GameStateDrawn, game.State)
	s.Equal(42, game.Grid.TokenCount())
}

// Test: two sessions in one process do not share state
func (s *IntegrationSuite) TestIndependentGames() {
	s.app.MockRandom.QueueString("GAME03", "GAME04")
	first, err := s.app.GameController.CreateGame(s.ctx, "red", "yellow")
	s.Require().NoError(err)
	second, err := s.app.GameController.CreateGame(s.ctx, "blue", "green")
	s.Require().NoError(err)

	_, err = s.app.GameController.SubmitSelection(s.ctx, first.ID, "1")
	s.Require().NoError(err)

	s.Equal(1, first.Grid.TokenCount())
	s.Equal(0, second.Grid.TokenCount())
	s.Equal(model.PlayerID("yellow"), first.CurrentPlayer())
	s.Equal(model.PlayerID("blue"), second.CurrentPlayer())
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "redis"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.GameController)
	s.NotNil(app.Storage)
}
