package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestRejections_Distinct verifies every rejection is its own sentinel.
func TestRejections_Distinct(t *testing.T) {
	for i, a := range Rejections {
		for j, b := range Rejections {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMessage verifies the boundary text for rejections and other errors.
func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"rejection", ErrOccupied, "The destination square is occupied"},
		{"wrapped rejection", &MoveError{Err: ErrSelfCheck, Notation: "Ke2"}, "The king is or would be in check"},
		{"parse error", &ParseError{Err: ErrBadRow, Input: "e9", Column: 2, Got: "9"}, `Invalid row: "e9" at column 2: unexpected "9"`},
		{"other", ErrGameNotFound, "Game not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrBlocked,
				GameID:   "5d1c",
				Ply:      12,
				Colour:   "White",
				Notation: "Bc4",
			},
			contains: []string{"game 5d1c", "ply 12", "White", "Bc4", "in the way"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrNoLegalMove},
			contains: []string{"no piece can make that move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrCastleForfeited,
		Ply:      24,
		Notation: "O-O-O",
	}

	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrCastleForfeited) {
		t.Error("errors.Is(wrapped, ErrCastleForfeited) = false, want true")
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrBadPiece, Input: "Zf3", Column: 1}

	if !errors.Is(parseErr, ErrBadPiece) {
		t.Error("errors.Is(parseErr, ErrBadPiece) = false, want true")
	}
	if !containsIgnoreCase(parseErr.Error(), "column 1") {
		t.Errorf("ParseError.Error() should contain column, got %q", parseErr.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidMove, "move %d in game %s", 15, "abc")

	if !errors.Is(wrapped, ErrInvalidMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestIsAs(t *testing.T) {
	err := Wrap(&MoveError{Err: ErrBlocked, Ply: 3}, "replay")

	if !Is(err, ErrBlocked) {
		t.Error("Is(err, ErrBlocked) = false")
	}
	if Is(err, ErrOccupied) {
		t.Error("Is(err, ErrOccupied) = true")
	}
	var me *MoveError
	if !As(err, &me) || me.Ply != 3 {
		t.Errorf("As(err, *MoveError) = %+v", me)
	}
}
