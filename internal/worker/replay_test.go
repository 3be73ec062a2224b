package worker

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestReadScript(t *testing.T) {
	const text = `# Italian opening
1. e4 e5
2. Nf3   # develop
Nc6

3. Bc4 Bc5
`
	s, err := ReadScript("italian", strings.NewReader(text))
	testutil.AssertNoError(t, err)

	want := &Script{
		Name: "italian",
		Moves: []Move{
			{Text: "e4", Line: 2},
			{Text: "e5", Line: 2},
			{Text: "Nf3", Line: 3},
			{Text: "Nc6", Line: 4},
			{Text: "Bc4", Line: 6},
			{Text: "Bc5", Line: 6},
		},
	}
	testutil.AssertEqual(t, s, want)
}

func TestReadScript_FEN(t *testing.T) {
	s, err := ReadScript("castle", strings.NewReader("fen 6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1\nO-O-O\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.FEN, "6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	testutil.AssertEqual(t, len(s.Moves), 1)

	_, err = ReadScript("late", strings.NewReader("e4\nfen 8/8/8/8/8/8/8/8 w - - 0 1\n"))
	testutil.AssertRejection(t, err, errors.ErrInvalidFEN)
}

func TestIsMoveNumber(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"1.", true},
		{"12...", true},
		{"e4", false},
		{"1", false},
		{".", false},
		{"O-O", false},
	}
	for _, tt := range tests {
		if got := isMoveNumber(tt.tok); got != tt.want {
			t.Errorf("isMoveNumber(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func script(name, fen string, moves ...string) *Script {
	s := &Script{Name: name, FEN: fen}
	for i, m := range moves {
		s.Moves = append(s.Moves, Move{Text: m, Line: i + 1})
	}
	return s
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name       string
		script     *Script
		wantPlayed int
		wantErr    error
		wantGameID string
	}{
		{"clean opening", script("open", "", "e4", "e5", "Nf3", "Nc6"), 4, nil, ""},
		{"stops at rejection", script("bad", "", "e4", "Nc4", "Nf3"), 1, errors.ErrNoLegalMove, "bad:2"},
		{"from FEN", script("fen", "6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1", "O-O-O"), 1, nil, ""},
		{"unreadable command", script("typo", "", "Zf3"), 0, errors.ErrBadPiece, "typo:1"},
		{"bad FEN", script("broken", "8/8/8 w - - 0 1", "e4"), 0, errors.ErrInvalidFEN, ""},
	}

	replay := Replay(engine.DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := replay(WorkItem{Script: tt.script, Index: 7})
			testutil.AssertEqual(t, r.Index, 7)
			testutil.AssertEqual(t, r.Played, tt.wantPlayed)
			if tt.wantErr == nil {
				testutil.AssertNoError(t, r.Error)
				testutil.AssertFalse(t, r.Failed())
				return
			}
			testutil.AssertTrue(t, r.Failed())
			testutil.AssertRejection(t, r.Error, tt.wantErr)
			if tt.wantGameID != "" {
				var me *errors.MoveError
				testutil.AssertTrue(t, errors.As(r.Error, &me), "MoveError")
				testutil.AssertEqual(t, me.GameID, tt.wantGameID)
			}
		})
	}
}

func TestReplayAll_Order(t *testing.T) {
	var scripts []*Script
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			scripts = append(scripts, script("short", "", "e4"))
		} else {
			scripts = append(scripts, script("long", "", "e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O"))
		}
	}

	results := ReplayAll(scripts, engine.DefaultRules(), ReplayOptions{Workers: 4})
	if len(results) != len(scripts) {
		t.Fatalf("got %d results, want %d", len(results), len(scripts))
	}
	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		if r.Script != scripts[i] {
			t.Errorf("result %d carries the wrong script", i)
		}
		testutil.AssertNoError(t, r.Error)
		if i%3 == 0 {
			testutil.AssertEqual(t, r.Game.ToMove, chess.Black)
		} else {
			testutil.AssertFalse(t, r.Game.Board.CastlingRight(chess.White), "White castled")
		}
	}
}

func TestReadPGN(t *testing.T) {
	const pgn = `[Event "Casual"]
[Result "1-0"]

1. e4 e5 {open} 2. Nf3 (2. f4 exf4) Nc6 1-0

[Event "Endgame"]
[FEN "6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1"]

1. 0-0-0 *
`
	scripts, err := ReadPGN("games.pgn", strings.NewReader(pgn), nil)
	testutil.AssertNoError(t, err)

	want := []*Script{
		{
			Name: "games.pgn#1",
			Moves: []Move{
				{Text: "e4", Line: 4},
				{Text: "e5", Line: 4},
				{Text: "Nf3", Line: 4},
				{Text: "Nc6", Line: 4},
			},
		},
		{
			Name:  "games.pgn#2",
			FEN:   "6k1/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			Moves: []Move{{Text: "O-O-O", Line: 9}},
		},
	}
	testutil.AssertEqual(t, scripts, want)

	results := ReplayAll(scripts, engine.DefaultRules(), ReplayOptions{Workers: 2})
	for _, r := range results {
		testutil.AssertNoError(t, r.Error)
	}
}

func TestReplayAll_StopOnFailure(t *testing.T) {
	scripts := []*Script{
		script("a", "", "e4", "e5"),
		script("b", "", "e4", "Nc4"),
		script("c", "", "d4"),
		script("d", "", "c4"),
	}

	results := ReplayAll(scripts, engine.DefaultRules(), ReplayOptions{Workers: 1, StopOnFailure: true})
	testutil.AssertEqual(t, len(results), 4)

	testutil.AssertEqual(t, results[0].Played, 2)
	testutil.AssertFalse(t, results[0].Skipped, "a skipped")
	testutil.AssertRejection(t, results[1].Error, errors.ErrNoLegalMove)
	testutil.AssertFalse(t, results[1].Skipped, "b skipped")
	for _, r := range results[2:] {
		testutil.AssertTrue(t, r.Skipped, r.Script.Name+" skipped")
		testutil.AssertFalse(t, r.Failed(), r.Script.Name+" failed")
		testutil.AssertTrue(t, scripts[r.Index] == r.Script, r.Script.Name+" index")
	}

	all := ReplayAll(scripts, engine.DefaultRules(), ReplayOptions{Workers: 1})
	for _, r := range all {
		testutil.AssertFalse(t, r.Skipped, r.Script.Name+" skipped")
	}
	testutil.AssertEqual(t, all[3].Played, 1)
}
