package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds the switches of the move rules.
type RulesConfig struct {
	// KingRule names the king pattern: "reference" or "adjacent".
	KingRule string

	// PawnDoubleStep lets pawns advance two squares from their start rank.
	PawnDoubleStep bool
}

// NewRulesConfig creates a RulesConfig matching engine.DefaultRules.
func NewRulesConfig() *RulesConfig {
	def := engine.DefaultRules()
	return &RulesConfig{
		KingRule:       def.King.String(),
		PawnDoubleStep: def.PawnDoubleStep,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if _, ok := engine.ParseKingRule(r.KingRule); !ok {
		return fmt.Errorf("unknown king rule %q (want reference or adjacent): %w",
			r.KingRule, errors.ErrInvalidConfig)
	}
	return nil
}

// Engine converts the configuration to engine rules.
func (r *RulesConfig) Engine() engine.Rules {
	king, _ := engine.ParseKingRule(r.KingRule)
	return engine.Rules{King: king, PawnDoubleStep: r.PawnDoubleStep}
}
