package cli

import (
	"os"
	"strconv"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Output  string
	Verbose bool
	Player1 string
	Player2 string
}

// DefaultConfig returns a Config with defaults overridden by the environment
func DefaultConfig() *Config {
	return &Config{
		Output:  getEnvOrDefault("CONNECT4_OUTPUT", OutputText),
		Verbose: getEnvBool("CONNECT4_VERBOSE", false),
		Player1: os.Getenv("CONNECT4_PLAYER1"),
		Player2: os.Getenv("CONNECT4_PLAYER2"),
	}
}

// Validate checks flag values that cobra cannot
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return invalidFlag("output format", c.Output, OutputText, OutputJSON)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}
