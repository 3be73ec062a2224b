package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPieces is the capacity of the piece registry.
const MaxPieces = 32

const noSlot = -1

// Board holds a position. The piece registry owns kind, colour and
// position of every piece; the grid only records which registry slot
// stands on a square. Relocate is the single function that changes
// either of them, so they cannot drift apart.
//
// Captured pieces keep their registry slot with Kind set to Empty, which
// keeps slot numbers stable for the king and home rook indices.
//
// Board contains only arrays and is comparable with ==; copying the value
// copies the whole position.
type Board struct {
	pieces [MaxPieces]Piece
	count  int8

	// grid[file][rank] is slot+1, or 0 when vacant.
	grid [BoardSize][BoardSize]int8

	// Keep track of where the two kings are for check detection.
	kings [NumColours]int8

	// Rooks that started on their home corner, by colour and side.
	rooks [NumColours][2]int8

	// Per colour castling flag. Cleared for good once the colour's king
	// or either rook has moved, captured or castled.
	castle [NumColours]bool
}

// NewBoard creates a new empty board with no castling rights.
func NewBoard() *Board {
	b := &Board{}
	for c := 0; c < NumColours; c++ {
		b.kings[c] = noSlot
		b.rooks[c][QueenSide] = noSlot
		b.rooks[c][KingSide] = noSlot
	}
	return b
}

// NewInitialBoard creates a board with the standard starting position.
// Registry slots are filled file by file along the back ranks, White
// before Black, followed by the pawns.
func NewInitialBoard() *Board {
	b := NewBoard()
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		for _, colour := range []Colour{White, Black} {
			b.mustPlace(kind, colour, Sq(int8(file), colour.HomeRank()))
		}
	}
	for file := int8(0); file < BoardSize; file++ {
		for _, colour := range []Colour{White, Black} {
			b.mustPlace(Pawn, colour, Sq(file, colour.PawnRank()))
		}
	}
	b.castle[White] = true
	b.castle[Black] = true
	return b
}

func (b *Board) mustPlace(kind Kind, colour Colour, at Coord) {
	if _, err := b.Place(kind, colour, at); err != nil {
		panic(err)
	}
}

// Place adds a piece to the registry and returns its slot. It is used to
// set up positions; moves go through Relocate.
func (b *Board) Place(kind Kind, colour Colour, at Coord) (int, error) {
	switch {
	case kind == Empty || kind > Pawn:
		return noSlot, fmt.Errorf("cannot place %v: %w", kind, errors.ErrInvalidPosition)
	case !at.Valid():
		return noSlot, fmt.Errorf("square %d,%d is off the board: %w", at.File, at.Rank, errors.ErrInvalidPosition)
	case !b.IsEmpty(at):
		return noSlot, fmt.Errorf("square %v is already occupied: %w", at, errors.ErrInvalidPosition)
	case int(b.count) >= MaxPieces:
		return noSlot, fmt.Errorf("more than %d pieces: %w", MaxPieces, errors.ErrInvalidPosition)
	case kind == King && b.kings[colour] != noSlot:
		return noSlot, fmt.Errorf("second %v king: %w", colour, errors.ErrInvalidPosition)
	}

	slot := b.count
	b.count++
	b.pieces[slot] = Piece{Kind: kind, Colour: colour, Pos: at}
	b.grid[at.File][at.Rank] = slot + 1

	switch {
	case kind == King:
		b.kings[colour] = slot
	case kind == Rook && at.Rank == colour.HomeRank():
		if at.File == QueenSideRookFile && b.rooks[colour][QueenSide] == noSlot {
			b.rooks[colour][QueenSide] = slot
		}
		if at.File == KingSideRookFile && b.rooks[colour][KingSide] == noSlot {
			b.rooks[colour][KingSide] = slot
		}
	}
	return int(slot), nil
}

// Relocate moves the piece in slot to the target square. A piece already
// standing on the target is captured: its registry entry becomes Empty.
// The captured entry is returned (Kind Empty when nothing was taken).
// Relocate performs no legality checks.
func (b *Board) Relocate(slot int, to Coord) Piece {
	p := &b.pieces[slot]
	var captured Piece
	if occupant := b.grid[to.File][to.Rank]; occupant != 0 && int(occupant-1) != slot {
		victim := &b.pieces[occupant-1]
		captured = *victim
		victim.Kind = Empty
	}
	b.grid[p.Pos.File][p.Pos.Rank] = 0
	b.grid[to.File][to.Rank] = int8(slot + 1)
	p.Pos = to
	return captured
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Len returns the number of registry slots in use, captured ones included.
func (b *Board) Len() int {
	return int(b.count)
}

// Piece returns the registry entry in slot.
func (b *Board) Piece(slot int) Piece {
	return b.pieces[slot]
}

// Pieces returns the live pieces in registry order.
func (b *Board) Pieces() []Piece {
	live := make([]Piece, 0, b.count)
	for _, p := range b.pieces[:b.count] {
		if p.Live() {
			live = append(live, p)
		}
	}
	return live
}

// At returns the occupant of a square. Off-board squares are Vacant.
func (b *Board) At(c Coord) Occupant {
	slot, ok := b.SlotAt(c)
	if !ok {
		return Vacant
	}
	p := b.pieces[slot]
	return Occupant{Kind: p.Kind, Colour: p.Colour}
}

// IsEmpty returns true if no piece stands on the square.
func (b *Board) IsEmpty(c Coord) bool {
	_, ok := b.SlotAt(c)
	return !ok
}

// SlotAt returns the registry slot of the piece on a square.
func (b *Board) SlotAt(c Coord) (int, bool) {
	if !c.Valid() {
		return noSlot, false
	}
	s := b.grid[c.File][c.Rank]
	if s == 0 || !b.pieces[s-1].Live() {
		return noSlot, false
	}
	return int(s - 1), true
}

// KingSlot returns the registry slot of the colour's king.
func (b *Board) KingSlot(colour Colour) (int, bool) {
	return b.liveSlot(b.kings[colour], King)
}

// KingSquare returns where the colour's king stands.
func (b *Board) KingSquare(colour Colour) (Coord, bool) {
	slot, ok := b.KingSlot(colour)
	if !ok {
		return Coord{}, false
	}
	return b.pieces[slot].Pos, true
}

// HomeRook returns the registry slot of the rook that started in the
// colour's corner on the given side, while it is still in play.
func (b *Board) HomeRook(colour Colour, side Side) (int, bool) {
	return b.liveSlot(b.rooks[colour][side], Rook)
}

func (b *Board) liveSlot(slot int8, kind Kind) (int, bool) {
	if slot == noSlot || b.pieces[slot].Kind != kind {
		return noSlot, false
	}
	return int(slot), true
}

// CastlingRight reports whether the colour may still castle.
func (b *Board) CastlingRight(colour Colour) bool {
	return b.castle[colour]
}

// SetCastlingRight sets the colour's castling flag. Used by position setup.
func (b *Board) SetCastlingRight(colour Colour, ok bool) {
	b.castle[colour] = ok
}

// RevokeCastling clears the colour's castling flag permanently.
func (b *Board) RevokeCastling(colour Colour) {
	b.castle[colour] = false
}

// Validate checks that grid and registry agree: every live piece is on
// the grid at its position and every occupied square points at a live
// piece standing there.
func (b *Board) Validate() error {
	for slot, p := range b.pieces[:b.count] {
		if !p.Live() {
			continue
		}
		if got := b.grid[p.Pos.File][p.Pos.Rank]; int(got) != slot+1 {
			return fmt.Errorf("slot %d (%v %v) not on grid at %v: %w", slot, p.Colour, p.Kind, p.Pos, errors.ErrInvalidPosition)
		}
	}
	for file := int8(0); file < BoardSize; file++ {
		for rank := int8(0); rank < BoardSize; rank++ {
			s := b.grid[file][rank]
			if s == 0 {
				continue
			}
			p := b.pieces[s-1]
			if !p.Live() || p.Pos != Sq(file, rank) {
				return fmt.Errorf("grid square %v points at stale slot %d: %w", Sq(file, rank), s-1, errors.ErrInvalidPosition)
			}
		}
	}
	return nil
}
