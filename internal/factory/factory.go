package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connect4-go/internal/dependencies/clock"
	"github.com/mcoot/connect4-go/internal/dependencies/random"
	"github.com/mcoot/connect4-go/internal/services/game"
	"github.com/mcoot/connect4-go/internal/storage"
	"github.com/mcoot/connect4-go/internal/storage/memory"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	default:
		return nil, errors.New("invalid StorageType: must be 'memory'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		GameController: game.NewController(store, clk, rnd, logger),
	}
}
