// Package chess provides core chess types and the board model.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction).
func (c Colour) Forward() int8 {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int8 {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index the colour's pawns start on.
func (c Colour) PawnRank() int8 {
	return c.HomeRank() + c.Forward()
}

// Kind represents a chess piece type. Empty marks vacant squares and
// captured registry entries.
type Kind int8

const (
	Empty Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the upper case notation letter of a kind. Pawns have
// no letter in shorthand and return 'P' here for FEN use.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a notation letter to a kind. Both cases are
// accepted.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'P', 'p':
		return Pawn, true
	}
	return Empty, false
}

// Side selects the king side or queen side of the board for castling.
type Side int8

const (
	QueenSide Side = iota
	KingSide
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == KingSide {
		return "king side"
	}
	return "queen side"
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'

	// Home files of the castling pieces.
	KingFile          = 4
	QueenSideRookFile = 0
	KingSideRookFile  = BoardSize - 1
)

// Coord is a zero-based (file, rank) pair. The fields are signed so that
// deltas can be taken by subtraction.
type Coord struct {
	File int8
	Rank int8
}

// Sq builds a coordinate from file and rank indices.
func Sq(file, rank int8) Coord {
	return Coord{File: file, Rank: rank}
}

// Valid returns true if the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Sub returns the delta c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{File: c.File - o.File, Rank: c.Rank - o.Rank}
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{File: c.File + o.File, Rank: c.Rank + o.Rank}
}

// String returns the square name, e.g. "e4".
func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + c.File), byte(RankBase + c.Rank)})
}

// ParseSquare converts a square name such as "e4" to a coordinate.
func ParseSquare(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	c := Coord{File: int8(s[0]) - FileBase, Rank: int8(s[1]) - RankBase}
	return c, c.Valid()
}

// Piece is a registry entry: a kind, a colour and a position.
type Piece struct {
	Kind   Kind
	Colour Colour
	Pos    Coord
}

// Live returns true while the piece is still in play.
func (p Piece) Live() bool {
	return p.Kind != Empty
}

// Occupant is what a square holds: a coloured piece kind, or Vacant.
type Occupant struct {
	Kind   Kind
	Colour Colour
}

// Vacant is the occupant of an empty square.
var Vacant = Occupant{Kind: Empty}

// IsVacant returns true if no piece is on the square.
func (o Occupant) IsVacant() bool {
	return o.Kind == Empty
}

// Symbol returns the FEN letter of the occupant: upper case for White,
// lower case for Black, '.' when vacant.
func (o Occupant) Symbol() byte {
	if o.IsVacant() {
		return '.'
	}
	letter := o.Kind.Letter()
	if o.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}
