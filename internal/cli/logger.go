package cli

import (
	"io"
	"log/slog"
)

// newLogger logs to w, which is kept apart from the game output. Only
// warnings and errors are shown unless verbose is set.
func newLogger(c *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.Output == OutputJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
