package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the game server.
type ServerConfig struct {
	// ListenAddr is the HTTP listen address
	ListenAddr string

	// DataDir is the badger directory games are stored in; empty keeps
	// games in memory only
	DataDir string

	// RequestLog enables the per-request access log
	RequestLog bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8080",
		RequestLog: true,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// InMemory reports whether games are kept in memory only.
func (s *ServerConfig) InMemory() bool {
	return s.DataDir == ""
}
