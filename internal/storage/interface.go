package storage

import (
	"context"

	"github.com/mcoot/connect4-go/internal/model"
)

// Storage defines the interface for game session storage.
// Sessions live only as long as the process.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
