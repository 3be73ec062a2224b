package worker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/parser"
)

// Script is a sequence of commands to replay from a starting position.
type Script struct {
	Name  string
	FEN   string // Starting position; empty means the standard start
	Moves []Move
}

// Move is one command of a script and the line it came from.
type Move struct {
	Text string
	Line int
}

// ReadScript reads a move script. Blank lines and text after '#' are
// ignored. A line "fen <FEN>" sets the starting position. Other lines
// hold one or more whitespace separated commands; move numbers such as
// "1." or "12..." are skipped.
func ReadScript(name string, r io.Reader) (*Script, error) {
	script := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "fen "); ok {
			if len(script.Moves) > 0 {
				return nil, fmt.Errorf("%s:%d: fen after first move: %w", name, lineNo, errors.ErrInvalidFEN)
			}
			script.FEN = strings.TrimSpace(rest)
			continue
		}

		for _, tok := range strings.Fields(line) {
			if isMoveNumber(tok) {
				continue
			}
			script.Moves = append(script.Moves, Move{Text: tok, Line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return script, nil
}

// ReadPGN reads every game of a PGN file as a script named
// "<name>#<n>". The FEN tag, when present, sets the starting position;
// variations, comments and NAGs are dropped. Warnings about malformed
// PGN go to log.
func ReadPGN(name string, r io.Reader, log io.Writer) ([]*Script, error) {
	games, err := parser.NewParser(r, log).ParseAllGames()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	scripts := make([]*Script, 0, len(games))
	for i, g := range games {
		s := &Script{
			Name: fmt.Sprintf("%s#%d", name, i+1),
			FEN:  g.Tag("FEN"),
		}
		for _, m := range g.Moves {
			s.Moves = append(s.Moves, Move{Text: m.Text, Line: m.Line})
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// isMoveNumber matches "1." and "1...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Replay returns a ProcessFunc that plays a script to its end or to its
// first rejected command.
func Replay(rules engine.Rules) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Script: item.Script, Index: item.Index}

		game := engine.NewGame(rules)
		if item.Script.FEN != "" && item.Script.FEN != chess.InitialFEN {
			g, err := engine.NewGameFromFEN(item.Script.FEN, rules)
			if err != nil {
				result.Error = errors.Wrapf(err, "%s", item.Script.Name)
				return result
			}
			game = g
		}

		for _, m := range item.Script.Moves {
			next, err := game.PlayNotation(m.Text)
			if err != nil {
				var me *errors.MoveError
				if errors.As(err, &me) {
					me.GameID = fmt.Sprintf("%s:%d", item.Script.Name, m.Line)
				}
				result.Error = err
				break
			}
			game = next
			result.Played++
		}
		result.Game = game
		return result
	}
}

// ReplayOptions controls ReplayAll.
type ReplayOptions struct {
	Workers int

	// StopOnFailure stops handing out scripts once one has been rejected.
	// Scripts that were not started come back with Skipped set.
	StopOnFailure bool
}

// ReplayAll replays scripts on opts.Workers goroutines and returns one
// result per script, in script order.
func ReplayAll(scripts []*Script, rules engine.Rules, opts ReplayOptions) []ProcessResult {
	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	poolOpts := []PoolOption{WithWorkers(opts.Workers), WithBufferSize(bufferSize)}
	if opts.StopOnFailure {
		poolOpts = append(poolOpts, WithStopOnFailure())
	}
	pool := NewPoolWithOptions(Replay(rules), poolOpts...)
	pool.Start()

	go func() {
		for i, s := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(scripts))
	for i, s := range scripts {
		results[i] = ProcessResult{Script: s, Index: i, Skipped: true}
	}
	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
