// Package notation converts shorthand move text such as "e4", "Nf3",
// "Bxc6" or "O-O-O" into engine operations, and back.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Castling markers.
const (
	KingSideCastle  = "O-O"
	QueenSideCastle = "O-O-O"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isCapture returns true if c marks a capture.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true for check and annotation marks that carry no
// meaning for the engine.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// pieceLetter returns the piece named by an upper case letter. Pawns
// have no letter.
func pieceLetter(c byte) (chess.Kind, bool) {
	switch c {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'B':
		return chess.Bishop, true
	case 'N':
		return chess.Knight, true
	}
	return chess.Empty, false
}

// Parse decodes a shorthand command for the given colour. Malformed input
// yields an Invalid operation whose error wraps ErrBadColumn, ErrBadRow,
// ErrBadPiece or ErrUnrecognizedCommand in a *errors.ParseError.
func Parse(text string, colour chess.Colour) chess.Operation {
	move := strings.TrimSpace(text)
	for len(move) > 0 && isSuffix(move[len(move)-1]) {
		move = move[:len(move)-1]
	}
	if move == "" {
		return invalid(text, errors.ErrUnrecognizedCommand, 0, "")
	}

	if isCastlingChar(move[0]) {
		return parseCastle(text, move, colour)
	}

	pos := 0
	kind := chess.Pawn
	if c := move[0]; c >= 'A' && c <= 'Z' {
		k, ok := pieceLetter(c)
		if !ok {
			return invalid(text, errors.ErrBadPiece, 1, string(c))
		}
		kind = k
		pos++
	}

	capture := false
	if pos < len(move) && isCapture(move[pos]) {
		capture = true
		pos++
	}

	square := move[pos:]
	if len(square) != 2 {
		return invalid(text, errors.ErrUnrecognizedCommand, 0, "")
	}
	if !isCol(square[0]) {
		return invalid(text, errors.ErrBadColumn, pos+1, square[:1])
	}
	if !isRank(square[1]) {
		return invalid(text, errors.ErrBadRow, pos+2, square[1:])
	}
	target, _ := chess.ParseSquare(square)

	if capture {
		return chess.Capture{Kind: kind, Target: target, Colour: colour}
	}
	return chess.Move{Kind: kind, Target: target, Colour: colour}
}

// parseCastle accepts O-O and O-O-O written with letter O, digit 0 or
// lower case o.
func parseCastle(text, move string, colour chess.Colour) chess.Operation {
	tokens := strings.Split(move, "-")
	for _, tok := range tokens {
		if len(tok) != 1 || !isCastlingChar(tok[0]) {
			return invalid(text, errors.ErrUnrecognizedCommand, 0, "")
		}
	}
	switch len(tokens) {
	case 2:
		return chess.Castle{Colour: colour}
	case 3:
		return chess.Castle{Colour: colour, QueenSide: true}
	}
	return invalid(text, errors.ErrUnrecognizedCommand, 0, "")
}

func invalid(text string, err error, column int, got string) chess.Invalid {
	return chess.Invalid{Err: &errors.ParseError{
		Err:    err,
		Input:  text,
		Column: column,
		Got:    got,
	}}
}

// Format renders an operation in shorthand. Invalid operations render as
// the empty string.
func Format(op chess.Operation) string {
	switch op := op.(type) {
	case chess.Move:
		return pieceText(op.Kind) + op.Target.String()
	case chess.Capture:
		return pieceText(op.Kind) + "x" + op.Target.String()
	case chess.Castle:
		if op.QueenSide {
			return QueenSideCastle
		}
		return KingSideCastle
	}
	return ""
}

func pieceText(kind chess.Kind) string {
	if kind == chess.Pawn {
		return ""
	}
	return string(kind.Letter())
}
