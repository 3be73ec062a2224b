package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		colour chess.Colour
		want   bool
	}{
		{"rook on open file", []string{"WKe1", "BRe8", "BKa8"}, chess.White, true},
		{"rook screened by pawn", []string{"WKe1", "WPe2", "BRe8", "BKa8"}, chess.White, false},
		{"bishop diagonal", []string{"WKe1", "BBb4", "BKa8"}, chess.White, true},
		{"knight jump", []string{"BKe8", "WNd6", "WKa1"}, chess.Black, true},
		{"pawn pushes only forward", []string{"WKe1", "BPd2", "BKa8"}, chess.White, false},
		{"pawn straight ahead", []string{"WKe1", "BPe2", "BKa8"}, chess.White, true},
		{"no king", []string{"BRe8"}, chess.White, false},
	}

	r := DefaultRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.pieces...)
			if got := r.InCheck(b, tt.colour); got != tt.want {
				t.Errorf("InCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestProducesCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		slot   int
		to     string
		want   bool
	}{
		{"pinned bishop leaves file", []string{"WKe1", "WBe2", "BRe8", "BKa8"}, 1, "d3", true},
		{"king walks into rook file", []string{"WKe1", "BRd8", "BKa8"}, 0, "d1", true},
		{"king steps aside", []string{"WKe1", "BRd8", "BKa8"}, 0, "f2", false},
		{"capturing the checker", []string{"WKe1", "WRe2", "BRe5", "BKa8"}, 1, "e5", false},
		{"rook leaves the file", []string{"WKe1", "WRe2", "BRe5", "BKa8"}, 1, "d2", true},
	}

	r := DefaultRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.pieces...)
			before := *b

			got := r.ProducesCheck(b, tt.slot, testutil.MustSquare(t, tt.to))
			if got != tt.want {
				t.Errorf("ProducesCheck(slot %d -> %s) = %v, want %v", tt.slot, tt.to, got, tt.want)
			}
			if *b != before {
				t.Error("ProducesCheck modified the board")
			}
			testutil.AssertBoardEqual(t, b, &before, "after ProducesCheck")
		})
	}
}

func TestCapturedPieceIsNotAnAttacker(t *testing.T) {
	r := DefaultRules()
	b := testutil.MustBoard(t, "WKe1", "BRe8", "WRa8", "BKh5")
	e1 := testutil.MustSquare(t, "e1")
	e8 := testutil.MustSquare(t, "e8")

	if !r.InCheck(b, chess.White) {
		t.Fatal("White should start in check from the rook on e8")
	}

	captured := b.Relocate(2, e8)
	if captured.Kind != chess.Rook || captured.Colour != chess.Black {
		t.Fatalf("Relocate captured %+v, want the black rook", captured)
	}

	victim := b.Piece(1)
	if victim.Live() {
		t.Fatalf("captured registry entry still live: %+v", victim)
	}
	if r.CanCheck(victim, e1, b) {
		t.Error("captured piece can still check")
	}
	if r.Attacked(b, e1, chess.Black) {
		t.Error("e1 still attacked after the rook was captured")
	}
	if r.InCheck(b, chess.White) {
		t.Error("White still in check after capturing the checker")
	}
	for _, p := range b.Pieces() {
		if p.Kind == chess.Rook && p.Colour == chess.Black {
			t.Error("captured rook listed among live pieces")
		}
	}
}

func TestCanCheck(t *testing.T) {
	r := DefaultRules()
	b := chess.NewInitialBoard()

	queen := b.Piece(6)
	if queen.Kind != chess.Queen || queen.Colour != chess.White {
		t.Fatalf("slot 6 = %+v, want the white queen", queen)
	}
	if r.CanCheck(queen, testutil.MustSquare(t, "d7"), b) {
		t.Error("queen on d1 reaches d7 through its own pawn")
	}
	if !r.CanCheck(queen, testutil.MustSquare(t, "d2"), b) {
		t.Error("queen on d1 should reach the adjacent d2")
	}

	knight := b.Piece(2)
	if !r.CanCheck(knight, testutil.MustSquare(t, "c3"), b) {
		t.Error("knight on b1 should reach c3")
	}
}
