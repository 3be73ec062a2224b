// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Rules
	kingRule     = flag.String("king", "reference", "King move rule: reference or adjacent")
	noDoubleStep = flag.Bool("nodouble", false, "Disallow the two-square pawn advance")
	startFEN     = flag.String("fen", "", "Start from this FEN position")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	asciiBoard = flag.Bool("ascii", false, "Draw pieces as FEN letters instead of glyphs")
	showFEN    = flag.Bool("showfen", false, "Print the FEN after every board")
	tuiMode    = flag.Bool("tui", false, "Play on a full-screen terminal board")

	// Replay
	numWorkers = flag.Int("workers", 0, "Replay worker goroutines (0 = number of CPUs)")
	showBoard  = flag.Bool("board", false, "Print the final board of each replayed script")
	duplicates = flag.Bool("D", false, "Report scripts ending in the same position as an earlier one")
	stopEarly  = flag.Bool("stop", false, "Stop replaying after the first rejected command")

	// Verbosity
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Log every command")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRulesFlags(cfg)
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyRulesFlags configures the move rules.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.KingRule = *kingRule
	cfg.Rules.PawnDoubleStep = !*noDoubleStep
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Glyphs = !*asciiBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.TUI = *tuiMode
}

// applyReplayFlags configures script replay.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.Workers = *numWorkers
	cfg.Replay.ShowBoard = *showBoard
	cfg.Replay.ReportDuplicates = *duplicates
	cfg.Replay.StopOnFailure = *stopEarly
}
