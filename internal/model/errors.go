package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrInvalidPlayer   = errors.New("player identifier must not be empty")
	ErrDuplicatePlayer = errors.New("players must have different identifiers")

	// Move errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameComplete = errors.New("game is already complete")
)
