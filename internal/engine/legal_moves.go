package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Targets returns every square the piece in slot could move to or capture
// on right now, judged exactly as a Move or Capture command would judge
// that one piece. Squares are ordered rank by rank from a1.
func (r Rules) Targets(b *chess.Board, slot int) []chess.Coord {
	p := b.Piece(slot)
	if !p.Live() {
		return nil
	}

	var targets []chess.Coord
	for rank := int8(0); rank < chess.BoardSize; rank++ {
		for file := int8(0); file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			occ := b.At(sq)
			if !occ.IsVacant() && (occ.Colour == p.Colour || occ.Kind == chess.King) {
				continue
			}
			if r.judge(b, slot, sq, func(chess.Piece) error { return nil }) == nil {
				targets = append(targets, sq)
			}
		}
	}
	return targets
}
