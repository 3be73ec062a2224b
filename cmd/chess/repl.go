package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runREPL reads one command per line from in. Accepted commands pass the
// turn; rejected ones are reported and the same side moves again.
func runREPL(cfg *config.Config, game engine.Game, in io.Reader) error {
	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame("", game, nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	accepted, rejected := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return finish(cfg, writer, accepted, rejected)
		case "board":
			if err := writer.WriteGame("", game, nil); err != nil {
				return err
			}
			continue
		case "fen":
			if _, err := fmt.Fprintln(cfg.OutputFile, game.FEN()); err != nil {
				return err
			}
			continue
		}

		num, side := game.MoveNumber(), game.ToMove
		next, err := game.PlayNotation(line)
		if err != nil {
			rejected++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%v\n", err)
			}
		} else {
			accepted++
			game = next
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%d. %s %s\n", num, side, line)
			}
		}
		if werr := writer.WriteGame("", game, err); werr != nil {
			return werr
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading commands")
	}
	return finish(cfg, writer, accepted, rejected)
}

func finish(cfg *config.Config, writer output.GameWriter, accepted, rejected int) error {
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d command(s) accepted, %d rejected.\n", accepted, rejected)
	}
	return writer.Close()
}
