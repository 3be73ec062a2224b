// Package errors provides sentinel errors and error types for the rules
// engine. Every rejection the engine can report is one of the sentinels
// below; the typed errors add context while keeping errors.Is() and
// errors.As() working.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Rejections reported by the command resolver and the castling authority.
// Use these with errors.Is() to check for a specific outcome.
var (
	// ErrInvalidMove indicates the piece cannot geometrically reach the target.
	ErrInvalidMove = errors.New("invalid move")

	// ErrBlocked indicates a piece stands between origin and target.
	ErrBlocked = errors.New("there is a piece in the way")

	// ErrOccupied indicates the destination of a plain move is not empty.
	ErrOccupied = errors.New("the destination square is occupied")

	// ErrNoPieceThere indicates a capture aimed at an empty square.
	ErrNoPieceThere = errors.New("there is no piece to capture there")

	// ErrCannotCaptureKing indicates a capture aimed at a king.
	ErrCannotCaptureKing = errors.New("the king cannot be captured")

	// ErrSameColour indicates a capture aimed at a piece of the mover's colour.
	ErrSameColour = errors.New("cannot capture a piece of your own colour")

	// ErrSelfCheck indicates the move would leave the mover's king attacked.
	ErrSelfCheck = errors.New("the king is or would be in check")

	// ErrAmbiguousMove indicates more than one piece can make the move.
	ErrAmbiguousMove = errors.New("more than one piece can move there, specify the piece")

	// ErrNoLegalMove is the generic fallback when no candidate could move.
	ErrNoLegalMove = errors.New("no piece can make that move")

	// ErrCastleForfeited indicates the colour has lost its castling rights.
	ErrCastleForfeited = errors.New("castling rights have been forfeited")

	// ErrCastleBlocked indicates pieces stand between king and rook.
	ErrCastleBlocked = errors.New("cannot castle, there are pieces in the way")

	// ErrCastleSquareThreatened indicates the king starts on, passes or
	// lands on an attacked square.
	ErrCastleSquareThreatened = errors.New("cannot castle through an attacked square")

	// ErrUnrecognizedCommand indicates input that is not a known command shape.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)

// Parser and session errors.
var (
	// ErrBadColumn indicates a file letter outside a-h.
	ErrBadColumn = errors.New("invalid column")

	// ErrBadRow indicates a rank digit outside 1-8.
	ErrBadRow = errors.New("invalid row")

	// ErrBadPiece indicates an unknown piece letter.
	ErrBadPiece = errors.New("invalid piece")

	// ErrNotYourTurn indicates a command for the colour that is not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates a piece placement the board cannot hold.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidSquare indicates a square name other than a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Rejections lists every outcome the command resolver can report, in
// taxonomy order.
var Rejections = []error{
	ErrInvalidMove,
	ErrBlocked,
	ErrOccupied,
	ErrNoPieceThere,
	ErrCannotCaptureKing,
	ErrSameColour,
	ErrSelfCheck,
	ErrAmbiguousMove,
	ErrNoLegalMove,
	ErrCastleForfeited,
	ErrCastleBlocked,
	ErrCastleSquareThreatened,
	ErrUnrecognizedCommand,
}

// Message returns the text shown to a player for err: the rejection
// sentinel's text when err wraps one, the full error otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range Rejections {
		if errors.Is(err, r) {
			return capitalize(r.Error())
		}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return capitalize(pe.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MoveError wraps a rejection with the context of the command that
// caused it. It implements the error interface and supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying rejection
	GameID   string // Session id (if known)
	Ply      int    // 1-based ply the command was attempted at (0 if unknown)
	Colour   string // Colour that issued the command
	Notation string // The command text (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a notation error with its location in the input.
type ParseError struct {
	Err    error  // The underlying error
	Input  string // The text being parsed
	Column int    // 1-based offending column (0 if not applicable)
	Got    string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target. It lets
// callers that import this package as errors keep using errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
