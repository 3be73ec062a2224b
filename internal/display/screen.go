package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Theme holds the styles used on a tcell screen.
type Theme struct {
	Grid    tcell.Style
	Light   tcell.Style
	Dark    tcell.Style
	Message tcell.Style
}

// DefaultTheme returns the standard screen colours.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Grid:    base.Foreground(tcell.ColorGray),
		Light:   base.Background(tcell.ColorBurlyWood).Foreground(tcell.ColorBlack),
		Dark:    base.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorBlack),
		Message: base.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Draw paints the board on s with the same layout as Render, colouring
// the inside of each square, and writes the result message and status
// below it. The screen is cleared first and shown afterwards.
func Draw(s tcell.Screen, b *chess.Board, result error, status string, opts Options, theme Theme) {
	s.Clear()
	lines := Lines(b, opts)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			s.SetContent(x, y, r, nil, cellStyle(x, y, theme))
			x++
		}
	}

	y := len(lines)
	if result != nil {
		drawText(s, 0, y, errors.Message(result), theme.Message)
		y++
	}
	if status != "" {
		drawText(s, 0, y, status, tcell.StyleDefault)
	}
	s.Show()
}

// cellStyle picks the style for screen position x, y of the grid: board
// rows are the odd lines, squares start after the rank label and border.
func cellStyle(x, y int, theme Theme) tcell.Style {
	if y%2 == 0 || y > 2*chess.BoardSize-1 {
		return theme.Grid
	}
	col := x - 3
	if col < 0 || col%(cellWidth+1) == cellWidth {
		return theme.Grid
	}
	file := col / (cellWidth + 1)
	if file >= chess.BoardSize {
		return theme.Grid
	}
	rank := chess.BoardSize - 1 - y/2
	if (file+rank)%2 == 0 {
		return theme.Dark
	}
	return theme.Light
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// SquareAt maps a screen position back to a board square, for mouse input.
func SquareAt(x, y int) (chess.Coord, bool) {
	if y%2 == 0 || y > 2*chess.BoardSize-1 {
		return chess.Coord{}, false
	}
	col := x - 3
	if col < 0 || col%(cellWidth+1) == cellWidth {
		return chess.Coord{}, false
	}
	sq := chess.Sq(int8(col/(cellWidth+1)), int8(chess.BoardSize-1-y/2))
	return sq, sq.Valid()
}
