package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of parallel replays (0 = number of CPUs)
	Workers int

	// ShowBoard prints the final board of every script
	ShowBoard bool

	// ReportDuplicates names scripts ending in the same position as an
	// earlier script
	ReportDuplicates bool

	// StopOnFailure stops replaying further scripts after the first
	// rejected command
	StopOnFailure bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
