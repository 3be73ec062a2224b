package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// precheck is the first per-candidate test, specific to moves or captures.
type precheck func(p chess.Piece) error

// findPieceSource picks the one piece of kind and colour that can go to
// target. Every candidate is judged; with more than one winner the
// command is ambiguous, with none the most specific rejection is
// reported.
func (r Rules) findPieceSource(b *chess.Board, kind chess.Kind, colour chess.Colour, target chess.Coord, pre precheck) (int, error) {
	var valid []int
	var rejections []error

	for slot := 0; slot < b.Len(); slot++ {
		p := b.Piece(slot)
		if !p.Live() || p.Kind != kind || p.Colour != colour {
			continue
		}
		if err := r.judge(b, slot, target, pre); err != nil {
			rejections = append(rejections, err)
			continue
		}
		valid = append(valid, slot)
	}

	switch len(valid) {
	case 0:
		return -1, selectRejection(rejections)
	case 1:
		return valid[0], nil
	default:
		return -1, errors.ErrAmbiguousMove
	}
}

// judge runs the checks for one candidate in order: precheck, pattern,
// path, self-check.
func (r Rules) judge(b *chess.Board, slot int, target chess.Coord, pre precheck) error {
	p := b.Piece(slot)
	if err := pre(p); err != nil {
		return err
	}
	if !r.ValidMove(p, target) {
		return errors.ErrInvalidMove
	}
	if !r.PathClear(p, target, b) {
		return errors.ErrBlocked
	}
	if r.ProducesCheck(b, slot, target) {
		return errors.ErrSelfCheck
	}
	return nil
}

// selectRejection returns the first rejection more specific than
// ErrInvalidMove, or ErrNoLegalMove when there is none (including when
// there were no candidates at all).
func selectRejection(rejections []error) error {
	for _, err := range rejections {
		if err != errors.ErrInvalidMove {
			return err
		}
	}
	return errors.ErrNoLegalMove
}

// applyPieceMove handles a plain move to an empty square.
func (r Rules) applyPieceMove(b *chess.Board, m chess.Move) error {
	if !m.Target.Valid() {
		return errors.ErrInvalidMove
	}
	destinationEmpty := func(chess.Piece) error {
		if !b.IsEmpty(m.Target) {
			return errors.ErrOccupied
		}
		return nil
	}

	slot, err := r.findPieceSource(b, m.Kind, m.Colour, m.Target, destinationEmpty)
	if err != nil {
		return err
	}
	commit(b, slot, m.Target)
	return nil
}

// applyCapture handles a move onto an enemy piece.
func (r Rules) applyCapture(b *chess.Board, c chess.Capture) error {
	if !c.Target.Valid() {
		return errors.ErrInvalidMove
	}
	victim := b.At(c.Target)
	if victim.IsVacant() {
		return errors.ErrNoPieceThere
	}
	if victim.Kind == chess.King {
		return errors.ErrCannotCaptureKing
	}
	differentColour := func(p chess.Piece) error {
		if p.Colour == victim.Colour {
			return errors.ErrSameColour
		}
		return nil
	}

	slot, err := r.findPieceSource(b, c.Kind, c.Colour, c.Target, differentColour)
	if err != nil {
		return err
	}
	commit(b, slot, c.Target)
	return nil
}

// commit moves the piece and revokes castling when a king or rook moves.
func commit(b *chess.Board, slot int, target chess.Coord) {
	p := b.Piece(slot)
	b.Relocate(slot, target)
	if p.Kind == chess.King || p.Kind == chess.Rook {
		b.RevokeCastling(p.Colour)
	}
}
