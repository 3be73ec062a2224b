package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Destination files of king and rook after castling.
const (
	kingSideKingFile  = chess.KingFile + 2
	kingSideRookFile  = chess.KingFile + 1
	queenSideKingFile = chess.KingFile - 2
	queenSideRookFile = chess.KingFile - 1
)

// castleSquares returns the squares that must not be attacked for a
// castle: the king's square, then the squares toward the rook. King side
// checks the two squares the king crosses; queen side checks all three
// squares up to the rook.
func castleSquares(colour chess.Colour, side chess.Side) []chess.Coord {
	rank := colour.HomeRank()
	squares := []chess.Coord{chess.Sq(chess.KingFile, rank)}
	if side == chess.KingSide {
		for file := int8(chess.KingFile + 1); file <= chess.KingFile+2; file++ {
			squares = append(squares, chess.Sq(file, rank))
		}
		return squares
	}
	for file := int8(chess.KingFile - 1); file >= chess.KingFile-3; file-- {
		squares = append(squares, chess.Sq(file, rank))
	}
	return squares
}

// Castle castles the colour's king with the home rook on side. The board
// is only modified when the castle is allowed.
func (r Rules) Castle(b *chess.Board, colour chess.Colour, side chess.Side) error {
	if !b.CastlingRight(colour) {
		return errors.ErrCastleForfeited
	}

	kingSlot, ok := b.KingSlot(colour)
	if !ok {
		return errors.ErrCastleForfeited
	}
	rookSlot, ok := b.HomeRook(colour, side)
	if !ok {
		return errors.ErrCastleForfeited
	}
	king := b.Piece(kingSlot)
	rook := b.Piece(rookSlot)

	rank := colour.HomeRank()
	rookHome := chess.Sq(chess.KingSideRookFile, rank)
	if side == chess.QueenSide {
		rookHome = chess.Sq(chess.QueenSideRookFile, rank)
	}
	if king.Pos != chess.Sq(chess.KingFile, rank) || rook.Pos != rookHome {
		return errors.ErrCastleForfeited
	}

	if !r.PathClear(king, rook.Pos, b) {
		return errors.ErrCastleBlocked
	}

	for _, sq := range castleSquares(colour, side) {
		if r.Attacked(b, sq, colour.Opposite()) {
			return errors.ErrCastleSquareThreatened
		}
	}

	kingTo, rookTo := chess.Sq(kingSideKingFile, rank), chess.Sq(kingSideRookFile, rank)
	if side == chess.QueenSide {
		kingTo, rookTo = chess.Sq(queenSideKingFile, rank), chess.Sq(queenSideRookFile, rank)
	}
	b.Relocate(kingSlot, kingTo)
	b.Relocate(rookSlot, rookTo)
	b.RevokeCastling(colour)
	return nil
}
