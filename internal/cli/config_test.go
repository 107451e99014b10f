package cli

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	s.T().Setenv("CONNECT4_OUTPUT", "")
	s.T().Setenv("CONNECT4_VERBOSE", "")
	s.T().Setenv("CONNECT4_PLAYER1", "")
	s.T().Setenv("CONNECT4_PLAYER2", "")

	c := DefaultConfig()

	s.Equal(OutputText, c.Output)
	s.False(c.Verbose)
	s.Empty(c.Player1)
	s.Empty(c.Player2)
	s.NoError(c.Validate())
}

func (s *ConfigSuite) TestEnvironmentOverrides() {
	s.T().Setenv("CONNECT4_OUTPUT", "json")
	s.T().Setenv("CONNECT4_VERBOSE", "true")
	s.T().Setenv("CONNECT4_PLAYER1", "red")
	s.T().Setenv("CONNECT4_PLAYER2", "yellow")

	c := DefaultConfig()

	s.Equal(OutputJSON, c.Output)
	s.True(c.Verbose)
	s.Equal("red", c.Player1)
	s.Equal("yellow", c.Player2)
}

func (s *ConfigSuite) TestUnparseableBoolFallsBack() {
	s.T().Setenv("CONNECT4_VERBOSE", "loud")

	s.False(DefaultConfig().Verbose)
}

func (s *ConfigSuite) TestValidateRejectsUnknownOutput() {
	c := &Config{Output: "xml"}
	s.Error(c.Validate())
}
