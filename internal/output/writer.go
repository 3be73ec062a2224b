// Package output writes games as text boards or JSON snapshots.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/display"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a game and the result of its last command.
	WriteGame(id string, g engine.Game, result error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as box-drawing boards.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes the board, the rejection message if any, and a status
// line.
func (tw *TextWriter) WriteGame(id string, g engine.Game, result error) error {
	opts := display.Options{Glyphs: tw.cfg.Output.Glyphs}
	if err := display.Render(tw.w, &g.Board, result, opts); err != nil {
		return err
	}
	if tw.cfg.Output.ShowFEN {
		if _, err := fmt.Fprintln(tw.w, g.FEN()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w, Status(id, g))
	return err
}

// Status describes whose turn it is, e.g. "Black to move (check)".
func Status(id string, g engine.Game) string {
	var sb strings.Builder
	if id != "" {
		sb.WriteString(id)
		sb.WriteString(": ")
	}
	sb.WriteString(g.ToMove.String())
	sb.WriteString(" to move")
	if g.InCheck() {
		sb.WriteString(" (check)")
	}
	return sb.String()
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*Snapshot
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		games:  make([]*Snapshot, 0),
		single: false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a snapshot for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(id string, g engine.Game, result error) error {
	snap := GameToJSON(id, g, result)
	if jw.single {
		return WriteJSON(jw.w, snap)
	}

	// Buffer for batch output
	jw.games = append(jw.games, snap)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := WriteJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
