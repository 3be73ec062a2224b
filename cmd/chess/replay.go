package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runReplay replays each script file and reports the first rejection in
// each. It returns the process exit status: 0 when every script played
// to its end.
func runReplay(cfg *config.Config, files []string) int {
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "replay: no script files\n")
		return 2
	}

	scripts, err := loadScripts(cfg, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	workers := cfg.Replay.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	results := worker.ReplayAll(scripts, cfg.EngineRules(), worker.ReplayOptions{
		Workers:       workers,
		StopOnFailure: cfg.Replay.StopOnFailure,
	})

	return reportReplay(cfg, results)
}

// loadScripts reads every file as a move script, or as one script per
// game for .pgn files.
func loadScripts(cfg *config.Config, files []string) ([]*worker.Script, error) {
	scripts := make([]*worker.Script, 0, len(files))
	for _, name := range files {
		f, err := os.Open(name) //nolint:gosec // G304: user-specified script file
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(filepath.Ext(name), ".pgn") {
			var games []*worker.Script
			games, err = worker.ReadPGN(name, f, cfg.LogFile)
			scripts = append(scripts, games...)
		} else {
			var s *worker.Script
			s, err = worker.ReadScript(name, f)
			scripts = append(scripts, s)
		}
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return scripts, nil
}

// reportReplay writes one line per script, or the final positions when
// boards or JSON were requested.
func reportReplay(cfg *config.Config, results []worker.ProcessResult) int {
	var writer output.GameWriter
	if cfg.Output.JSONFormat {
		writer = output.NewJSONWriter(cfg.OutputFile, cfg)
	} else if cfg.Replay.ShowBoard {
		writer = output.NewTextWriter(cfg.OutputFile, cfg)
	}

	failed, skipped := 0, 0
	for _, r := range results {
		if r.Skipped {
			skipped++
			if writer == nil {
				fmt.Fprintf(cfg.OutputFile, "%s: skipped\n", r.Script.Name)
			}
			continue
		}
		if r.Failed() {
			failed++
		}
		if writer != nil {
			if err := writer.WriteGame(r.Script.Name, r.Game, r.Error); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
			continue
		}
		fmt.Fprintln(cfg.OutputFile, replayLine(r))
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if cfg.Replay.ReportDuplicates {
		reportDuplicates(cfg, results)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d script(s) replayed, %d stopped early.\n", len(results)-skipped, failed)
		if skipped > 0 {
			fmt.Fprintf(cfg.LogFile, "%d script(s) skipped after a rejection.\n", skipped)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// replayLine summarises one result, e.g.
// "games/a.txt: 6 move(s) played" or
// "games/b.txt:4: Black Nd7: The destination square is occupied".
func replayLine(r worker.ProcessResult) string {
	if !r.Failed() {
		return fmt.Sprintf("%s: %d move(s) played", r.Script.Name, r.Played)
	}
	var me *errors.MoveError
	if errors.As(r.Error, &me) {
		return fmt.Sprintf("%s: %s %s: %s", me.GameID, me.Colour, me.Notation, errors.Message(r.Error))
	}
	return fmt.Sprintf("%s: %v", r.Script.Name, r.Error)
}

// reportDuplicates names every script whose final position was already
// reached by an earlier script, in script order.
func reportDuplicates(cfg *config.Config, results []worker.ProcessResult) {
	detector := hashing.NewDuplicateDetector(0)
	for _, r := range results {
		if r.Skipped {
			continue
		}
		hash := hashing.GenerateZobristHash(&r.Game.Board, r.Game.ToMove)
		if first, dup := detector.CheckAndAdd(r.Script.Name, hash); dup {
			fmt.Fprintf(cfg.OutputFile, "%s: same final position as %s\n", r.Script.Name, first)
		}
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d distinct final position(s), %d duplicate(s).\n",
			detector.UniqueCount(), detector.DuplicateCount())
	}
}
