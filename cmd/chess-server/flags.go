// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	listenAddr   = flag.String("addr", ":8080", "HTTP listen address")
	dataDir      = flag.String("data", "", "Badger directory for stored games (default: memory only)")
	noRequestLog = flag.Bool("norequestlog", false, "Don't log each request")
	kingRule     = flag.String("king", "reference", "King move rule for new games: reference or adjacent")
	noDoubleStep = flag.Bool("nodouble", false, "Disallow the two-square pawn advance in new games")
	quiet        = flag.Bool("s", false, "Log warnings and errors only")
	verbose      = flag.Bool("v", false, "Log rejected commands")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Server.ListenAddr = *listenAddr
	cfg.Server.DataDir = *dataDir
	cfg.Server.RequestLog = !*noRequestLog
	cfg.Rules.KingRule = *kingRule
	cfg.Rules.PawnDoubleStep = !*noDoubleStep

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
