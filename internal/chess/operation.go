package chess

// Operation is a command for the rules engine. It is one of Move,
// Capture, Castle or Invalid.
type Operation interface {
	// Mover returns the colour issuing the command. Invalid reports ok=false.
	Mover() (Colour, bool)
	isOperation()
}

// Move is a plain move of a piece of the given kind to an empty square.
type Move struct {
	Kind   Kind
	Target Coord
	Colour Colour
}

// Capture moves a piece of the given kind onto an enemy piece.
type Capture struct {
	Kind   Kind
	Target Coord
	Colour Colour
}

// Castle castles the colour's king with one of its home rooks.
type Castle struct {
	Colour    Colour
	QueenSide bool
}

// Invalid carries the reason a command could not be understood.
type Invalid struct {
	Err error
}

func (m Move) Mover() (Colour, bool)    { return m.Colour, true }
func (c Capture) Mover() (Colour, bool) { return c.Colour, true }
func (c Castle) Mover() (Colour, bool)  { return c.Colour, true }
func (Invalid) Mover() (Colour, bool)   { return White, false }

func (Move) isOperation()    {}
func (Capture) isOperation() {}
func (Castle) isOperation()  {}
func (Invalid) isOperation() {}

// Side returns the castling side.
func (c Castle) Side() Side {
	if c.QueenSide {
		return QueenSide
	}
	return KingSide
}
