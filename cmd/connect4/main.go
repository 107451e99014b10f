package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcoot/connect4-go/internal/cli"
)

func main() {
	// Load .env file if it exists; CONNECT4_* variables set defaults for flags
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", slog.String("error", err.Error()))
	}

	cli.Execute()
}
