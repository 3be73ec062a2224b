package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanCheck reports whether attacker could move to square: a live piece
// whose pattern reaches the square along a clear path.
func (r Rules) CanCheck(attacker chess.Piece, square chess.Coord, b *chess.Board) bool {
	return attacker.Live() && r.ValidMove(attacker, square) && r.PathClear(attacker, square, b)
}

// Attacked reports whether any live piece of colour by can check square.
func (r Rules) Attacked(b *chess.Board, square chess.Coord, by chess.Colour) bool {
	for slot := 0; slot < b.Len(); slot++ {
		p := b.Piece(slot)
		if p.Colour == by && r.CanCheck(p, square, b) {
			return true
		}
	}
	return false
}

// InCheck returns true if the given colour's king is attacked.
func (r Rules) InCheck(b *chess.Board, colour chess.Colour) bool {
	king, ok := b.KingSquare(colour)
	if !ok {
		return false
	}
	return r.Attacked(b, king, colour.Opposite())
}

// ProducesCheck reports whether moving the piece in slot to target would
// leave its own king attacked. The move, including any capture on target,
// is made on a copy of the board; b itself is never written.
func (r Rules) ProducesCheck(b *chess.Board, slot int, target chess.Coord) bool {
	sim := b.Copy()
	colour := sim.Piece(slot).Colour
	sim.Relocate(slot, target)
	return r.InCheck(sim, colour)
}
