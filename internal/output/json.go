package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Snapshot is the JSON form of a game after a command.
type Snapshot struct {
	ID       string     `json:"id,omitempty"`
	FEN      string     `json:"fen"`
	ToMove   string     `json:"toMove"` // "white" or "black"
	Castling Castling   `json:"castling"`
	InCheck  bool       `json:"inCheck"`
	Moves    []JSONMove `json:"moves"`
	Accepted bool       `json:"accepted"`
	Result   string     `json:"result,omitempty"` // rejection message
	Board    []string   `json:"board"`            // rank 8 first, '.' for empty
}

// Castling holds the per-colour castling flags.
type Castling struct {
	White bool `json:"white"`
	Black bool `json:"black"`
}

// JSONMove represents an accepted command in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Games []*Snapshot `json:"games"`
}

// GameToJSON converts a game and the result of its last command to a
// snapshot.
func GameToJSON(id string, g engine.Game, result error) *Snapshot {
	snap := &Snapshot{
		ID:     id,
		FEN:    g.FEN(),
		ToMove: colourName(g.ToMove),
		Castling: Castling{
			White: g.Board.CastlingRight(chess.White),
			Black: g.Board.CastlingRight(chess.Black),
		},
		InCheck:  g.InCheck(),
		Moves:    convertHistory(g.History),
		Accepted: result == nil,
		Result:   errors.Message(result),
		Board:    boardRows(&g.Board),
	}
	return snap
}

// convertHistory numbers the plies, starting a new move after Black.
func convertHistory(history []engine.Ply) []JSONMove {
	moves := make([]JSONMove, 0, len(history))
	number := 1
	for _, ply := range history {
		moves = append(moves, JSONMove{
			MoveNumber: number,
			Color:      colourName(ply.Colour),
			Notation:   ply.Notation,
		})
		if ply.Colour == chess.Black {
			number++
		}
	}
	return moves
}

func boardRows(b *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := int8(0); file < chess.BoardSize; file++ {
			row[file] = b.At(chess.Sq(file, rank)).Symbol()
		}
		rows = append(rows, string(row))
	}
	return rows
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
