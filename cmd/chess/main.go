// chess plays commands against the rules engine, interactively or from
// move scripts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	args := flag.Args()
	if len(args) > 0 && args[0] == "replay" {
		os.Exit(runReplay(cfg, args[1:]))
	}

	game, err := newGame(cfg, *startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Output.TUI {
		err = runTUI(cfg, game)
	} else {
		err = runREPL(cfg, game, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGame starts a game from fen, or from the standard position.
func newGame(cfg *config.Config, fen string) (engine.Game, error) {
	if fen == "" {
		return engine.NewGame(cfg.EngineRules()), nil
	}
	return engine.NewGameFromFEN(fen, cfg.EngineRules())
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n")
	fmt.Fprintf(os.Stderr, "       chess [options] replay script-files...\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess commands against the rules engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  e4 Nf3 Bxc6 O-O O-O-O  play a move\n")
	fmt.Fprintf(os.Stderr, "  board                  show the board again\n")
	fmt.Fprintf(os.Stderr, "  fen                    print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit                   leave\n")
}
