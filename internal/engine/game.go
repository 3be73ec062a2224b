package engine

import (
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Ply is one accepted command in a game's history.
type Ply struct {
	Colour   chess.Colour
	Notation string
}

// Game is the state of a game between commands. It is a value: Play
// returns a new Game and never modifies the receiver.
type Game struct {
	Board   chess.Board
	ToMove  chess.Colour
	Rules   Rules
	History []Ply
}

// NewGame starts a game from the standard position with White to move.
func NewGame(rules Rules) Game {
	return Game{
		Board:  *chess.NewInitialBoard(),
		ToMove: chess.White,
		Rules:  rules,
	}
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string, rules Rules) (Game, error) {
	board, toMove, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		return Game{}, err
	}
	return Game{Board: *board, ToMove: toMove, Rules: rules}, nil
}

// Play runs op against the game. On success the returned game has the
// command applied, the turn passed and the history extended. On failure
// the returned game is g unchanged.
func (g Game) Play(op chess.Operation) (Game, error) {
	if colour, ok := op.Mover(); ok && colour != g.ToMove {
		return g, errors.ErrNotYourTurn
	}

	board := g.Board
	if err := g.Rules.Apply(&board, op); err != nil {
		return g, err
	}

	next := g
	next.Board = board
	next.ToMove = g.ToMove.Opposite()
	next.History = append(slices.Clip(g.History), Ply{Colour: g.ToMove, Notation: notation.Format(op)})
	return next, nil
}

// PlayNotation parses text as a command for the side to move and plays
// it. Errors are wrapped in a *errors.MoveError carrying the ply and text.
func (g Game) PlayNotation(text string) (Game, error) {
	next, err := g.Play(notation.Parse(text, g.ToMove))
	if err != nil {
		return g, &errors.MoveError{
			Err:      err,
			Ply:      len(g.History) + 1,
			Colour:   g.ToMove.String(),
			Notation: text,
		}
	}
	return next, nil
}

// MoveNumber returns the full move number of the next command.
func (g Game) MoveNumber() int {
	return len(g.History)/2 + 1
}

// FEN returns the position in FEN form.
func (g Game) FEN() string {
	return g.Board.FEN(g.ToMove, g.MoveNumber())
}

// InCheck reports whether the side to move is in check.
func (g Game) InCheck() bool {
	return g.Rules.InCheck(&g.Board, g.ToMove)
}

// Targets lists the squares the piece on from could be sent to.
func (g Game) Targets(from chess.Coord) []chess.Coord {
	slot, ok := g.Board.SlotAt(from)
	if !ok {
		return nil
	}
	return g.Rules.Targets(&g.Board, slot)
}
