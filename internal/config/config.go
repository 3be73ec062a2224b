// Package config provides configuration for the chess rules engine
// commands and server.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=every command

	Rules  *RulesConfig
	Output *OutputConfig
	Replay *ReplayConfig
	Server *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// EngineRules returns the move rules selected by the configuration.
// Call Validate first; an unknown king rule falls back to the reference
// rule here.
func (c *Config) EngineRules() engine.Rules {
	return c.Rules.Engine()
}
