package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns it with
// the side to move. Only placement, side to move and castling fields are
// read; a colour keeps its castling flag if either of its letters is
// present. Registry slots follow FEN order (rank 8 to 1, file a to h).
func NewBoardFromFEN(fen string) (*Board, Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, White, err
	}

	toMove := White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = Black
		default:
			return nil, White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	if len(parts) >= 3 {
		for _, c := range parts[2] {
			switch c {
			case 'K', 'Q':
				board.SetCastlingRight(White, true)
			case 'k', 'q':
				board.SetCastlingRight(Black, true)
			case '-':
			default:
				return nil, White, fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
			}
		}
	}

	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *Board, positions string) error {
	rank := int8(BoardSize - 1)
	file := int8(0)

	for _, c := range positions {
		switch {
		case c == '/':
			if file != BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int8(c - '0')
			if file > BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			kind, ok := KindFromLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			if _, err := board.Place(kind, colour, Sq(file, rank)); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			file++
		}
	}
	if rank != 0 || file != BoardSize {
		return fmt.Errorf("placement does not cover 8 ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// Placement returns the FEN piece placement field of the board.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := int8(BoardSize - 1); rank >= 0; rank-- {
		emptyCount := 0
		for file := int8(0); file < BoardSize; file++ {
			occ := b.At(Sq(file, rank))
			if occ.IsVacant() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(occ.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN converts the board to a full FEN string. En passant is never
// available and the halfmove clock is always 0.
func (b *Board) FEN(toMove Colour, moveNumber int) string {
	var sb strings.Builder
	sb.WriteString(b.Placement())
	if toMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.castlingField())
	fmt.Fprintf(&sb, " - 0 %d", moveNumber)
	return sb.String()
}

// castlingField writes the castling availability, limited to the sides
// whose home rook and king are still in place.
func (b *Board) castlingField() string {
	var sb strings.Builder
	for _, colour := range []Colour{White, Black} {
		if !b.CastlingRight(colour) {
			continue
		}
		for _, side := range []Side{KingSide, QueenSide} {
			if _, ok := b.HomeRook(colour, side); !ok {
				continue
			}
			letter := byte('K')
			if side == QueenSide {
				letter = 'Q'
			}
			if colour == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
