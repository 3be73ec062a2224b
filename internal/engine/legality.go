package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ValidMove reports whether the piece's movement pattern reaches target,
// ignoring anything standing in the way. A piece never moves to its own
// square and Empty never moves.
func (r Rules) ValidMove(p chess.Piece, target chess.Coord) bool {
	if p.Pos == target {
		return false
	}

	delta := target.Sub(p.Pos)
	df, dr := delta.File, delta.Rank

	switch p.Kind {
	case chess.King:
		if r.King == KingAdjacent {
			return abs(df) <= 1 && abs(dr) <= 1
		}
		return abs(df) == 1 || abs(dr) == 1

	case chess.Pawn:
		if df != 0 {
			return false
		}
		forward := p.Colour.Forward()
		if dr == forward {
			return true
		}
		return r.PawnDoubleStep && dr == 2*forward && p.Pos.Rank == p.Colour.PawnRank()

	case chess.Queen:
		return isStraight(df, dr) || isDiagonal(df, dr)

	case chess.Rook:
		return isStraight(df, dr)

	case chess.Bishop:
		return isDiagonal(df, dr)

	case chess.Knight:
		return abs(df*dr) == 2
	}

	return false
}

// isStraight is true when exactly one axis changes.
func isStraight(df, dr int8) bool {
	return (df == 0) != (dr == 0)
}

// isDiagonal is true when both axes change by the same amount.
func isDiagonal(df, dr int8) bool {
	return abs(df) == abs(dr)
}

// PathClear reports whether every square strictly between the piece and
// target is empty. Knights jump and always have a clear path; Empty never
// does. The walk steps by the sign of each delta, so the answer is only
// meaningful once ValidMove holds.
func (r Rules) PathClear(p chess.Piece, target chess.Coord, b *chess.Board) bool {
	switch p.Kind {
	case chess.Knight:
		return true
	case chess.Empty:
		return false
	}

	delta := target.Sub(p.Pos)
	step := chess.Coord{File: sign(delta.File), Rank: sign(delta.Rank)}
	n := abs(delta.File)
	if m := abs(delta.Rank); m > n {
		n = m
	}

	sq := p.Pos
	for i := int8(1); i < n; i++ {
		sq = sq.Add(step)
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}
