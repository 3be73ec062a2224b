package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func TestPlayTUI(t *testing.T) {
	s := simScreen(t)
	cfg := config.NewConfig()

	// Type e4, then a stray key and its correction.
	s.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '4', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	// Click e5 and play it.
	s.InjectMouse(20, 7, tcell.Button1, tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	g := playTUI(s, cfg, engine.NewGame(cfg.EngineRules()))

	testutil.AssertEqual(t, g.History, []engine.Ply{
		{Colour: chess.White, Notation: "e4"},
		{Colour: chess.Black, Notation: "e5"},
	})
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
}

func TestPlayTUI_Rejection(t *testing.T) {
	s := simScreen(t)
	cfg := config.NewConfig()

	for _, r := range "Qd4" {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	g := playTUI(s, cfg, engine.NewGame(cfg.EngineRules()))
	testutil.AssertEqual(t, len(g.History), 0)

	// The rejection is drawn under the board.
	var msg []rune
	for x := 0; x < 9; x++ {
		r, _, _, _ := s.GetContent(x, 18)
		msg = append(msg, r)
	}
	testutil.AssertEqual(t, string(msg), "There is ")
}
