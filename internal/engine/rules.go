// Package engine provides chess move validation and board manipulation
// for commands given in shorthand notation.
package engine

// KingRule selects the geometric pattern accepted for king moves.
type KingRule int8

const (
	// KingReference accepts any delta with at least one axis of
	// magnitude 1, e.g. (1,0), (1,1) and also (1,5).
	KingReference KingRule = iota

	// KingAdjacent accepts only the eight neighbouring squares.
	KingAdjacent
)

// String returns the name of the rule.
func (k KingRule) String() string {
	if k == KingAdjacent {
		return "adjacent"
	}
	return "reference"
}

// ParseKingRule converts a rule name back to a KingRule.
func ParseKingRule(s string) (KingRule, bool) {
	switch s {
	case "reference", "":
		return KingReference, true
	case "adjacent":
		return KingAdjacent, true
	}
	return KingReference, false
}

// Rules holds the switches of the move rules. The zero value is the
// strict reference behaviour: reference king pattern, single-step pawns.
type Rules struct {
	King KingRule

	// PawnDoubleStep lets a pawn on its starting rank advance two squares.
	PawnDoubleStep bool
}

// DefaultRules returns the rules used by games unless configured
// otherwise.
func DefaultRules() Rules {
	return Rules{
		King:           KingReference,
		PawnDoubleStep: true,
	}
}
