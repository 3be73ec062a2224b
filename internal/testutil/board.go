package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustFEN builds a board from a FEN string and fails the test on error.
func MustFEN(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	b, toMove, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b, toMove
}

// MustBoard builds a board from piece specs such as "WKe1" or "BNc6":
// colour letter, piece letter, square. Pieces are placed in the order
// given, which fixes their registry slots. Castling rights are granted to
// both colours; tests that need otherwise revoke them.
func MustBoard(t *testing.T, specs ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, spec := range specs {
		if len(spec) != 4 {
			t.Fatalf("bad piece spec %q", spec)
		}
		colour := chess.White
		if spec[0] == 'B' {
			colour = chess.Black
		}
		kind, ok := chess.KindFromLetter(spec[1])
		if !ok {
			t.Fatalf("bad piece letter in %q", spec)
		}
		at, ok := chess.ParseSquare(spec[2:])
		if !ok {
			t.Fatalf("bad square in %q", spec)
		}
		if _, err := b.Place(kind, colour, at); err != nil {
			t.Fatalf("Place(%q) error: %v", spec, err)
		}
	}
	b.SetCastlingRight(chess.White, true)
	b.SetCastlingRight(chess.Black, true)
	return b
}

// MustSquare parses an algebraic square and fails the test on error.
func MustSquare(t *testing.T, s string) chess.Coord {
	t.Helper()
	c, ok := chess.ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return c
}
