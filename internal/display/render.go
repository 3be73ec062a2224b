// Package display draws boards as box-drawing text or on a tcell screen.
package display

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Box-drawing characters for the grid.
const (
	topLeft     = '┌'
	topRight    = '┐'
	bottomLeft  = '└'
	bottomRight = '┘'
	horizontal  = '─'
	vertical    = '│'
	teeDown     = '┬'
	teeUp       = '┴'
	teeRight    = '├'
	teeLeft     = '┤'
	cross       = '┼'
)

// whiteKingGlyph is U+2654; the six white glyphs follow in King, Queen,
// Rook, Bishop, Knight, Pawn order and the black ones after them.
const whiteKingGlyph = '♔'

// cellWidth is the number of columns inside one square.
const cellWidth = 3

// Options controls how a board is drawn.
type Options struct {
	// Glyphs draws Unicode chess symbols; otherwise FEN letters are used.
	Glyphs bool
}

// Glyph returns the character drawn for an occupant.
func Glyph(o chess.Occupant, opts Options) rune {
	if o.IsVacant() {
		return ' '
	}
	if !opts.Glyphs {
		return rune(o.Symbol())
	}
	r := whiteKingGlyph + rune(o.Kind-chess.King)
	if o.Colour == chess.Black {
		r += 6
	}
	return r
}

// Lines returns the board as text lines, rank 8 at the top, with rank
// labels on the left and file labels underneath.
func Lines(b *chess.Board, opts Options) []string {
	lines := make([]string, 0, 2*chess.BoardSize+2)
	lines = append(lines, "  "+rule(topLeft, teeDown, topRight))

	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteByte(' ')
		sb.WriteRune(vertical)
		for file := int8(0); file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteRune(Glyph(b.At(chess.Sq(file, rank)), opts))
			sb.WriteByte(' ')
			sb.WriteRune(vertical)
		}
		lines = append(lines, sb.String())

		if rank > 0 {
			lines = append(lines, "  "+rule(teeRight, cross, teeLeft))
		}
	}

	lines = append(lines, "  "+rule(bottomLeft, teeUp, bottomRight))

	var files strings.Builder
	files.WriteString("  ")
	for file := int8(0); file < chess.BoardSize; file++ {
		files.WriteString("  ")
		files.WriteByte(byte(chess.FileBase + file))
		files.WriteByte(' ')
	}
	lines = append(lines, strings.TrimRight(files.String(), " "))
	return lines
}

func rule(left, join, right rune) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for file := 0; file < chess.BoardSize; file++ {
		if file > 0 {
			sb.WriteRune(join)
		}
		sb.WriteString(strings.Repeat(string(horizontal), cellWidth))
	}
	sb.WriteRune(right)
	return sb.String()
}

// Render writes the board followed by the message for result, if any.
func Render(w io.Writer, b *chess.Board, result error, opts Options) error {
	var sb strings.Builder
	for _, line := range Lines(b, opts) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if result != nil {
		sb.WriteString(errors.Message(result))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
