package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply executes op on the board. It either fully succeeds, mutating b,
// or returns one of the rejections in errors.Rejections (or the error an
// Invalid operation carries) and leaves b untouched.
func (r Rules) Apply(b *chess.Board, op chess.Operation) error {
	switch op := op.(type) {
	case chess.Move:
		return r.applyPieceMove(b, op)

	case chess.Capture:
		return r.applyCapture(b, op)

	case chess.Castle:
		return r.Castle(b, op.Colour, op.Side())

	case chess.Invalid:
		if op.Err != nil {
			return op.Err
		}
		return errors.ErrUnrecognizedCommand
	}

	return errors.ErrUnrecognizedCommand
}
