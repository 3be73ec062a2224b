package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/display"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runTUI plays on a full-screen board until Escape or Ctrl-C.
func runTUI(cfg *config.Config, game engine.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.EnableMouse()
	playTUI(screen, cfg, game)
	return nil
}

// playTUI runs the event loop on s and returns the game as it stands when
// the player leaves. Typed text is the pending command; Enter plays it.
// Clicking a square appends its name to the command.
func playTUI(s tcell.Screen, cfg *config.Config, game engine.Game) engine.Game {
	opts := display.Options{Glyphs: cfg.Output.Glyphs}
	theme := display.DefaultTheme()
	var input []rune
	var last error

	for {
		status := output.Status("", game) + " > " + string(input)
		display.Draw(s, &game.Board, last, status, opts, theme)

		switch ev := s.PollEvent().(type) {
		case nil:
			return game
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			if sq, ok := display.SquareAt(ev.Position()); ok {
				input = append(input, []rune(sq.String())...)
			}
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return game
			case tcell.KeyEnter:
				if len(input) == 0 {
					continue
				}
				next, err := game.PlayNotation(string(input))
				last = err
				if err == nil {
					game = next
				}
				input = input[:0]
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
	}
}
