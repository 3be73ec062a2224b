// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, one per (colour, kind, square), plus side to move and the
// per-colour castling flags.
var (
	pieceKeys  [chess.NumColours][chess.Pawn + 1][numSquares]uint64
	sideKey    uint64
	castleKeys [chess.NumColours]uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := chess.King; k <= chess.Pawn; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = next()
			}
		}
	}
	sideKey = next()
	for c := range castleKeys {
		castleKeys[c] = next()
	}
}

// GenerateZobristHash hashes a position: the live pieces, the side to
// move and the castling flags. Registry order does not affect the hash.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		if !p.Live() {
			continue
		}
		hash ^= pieceKeys[p.Colour][p.Kind][int(p.Pos.Rank)*chess.BoardSize+int(p.Pos.File)]
	}
	if toMove == chess.White {
		hash ^= sideKey
	}
	for _, c := range []chess.Colour{chess.Black, chess.White} {
		if board.CastlingRight(c) {
			hash ^= castleKeys[c]
		}
	}
	return hash
}

// DuplicateDetector remembers the first game seen for each position hash.
type DuplicateDetector struct {
	// hashTable maps a position hash to the first game that reached it
	hashTable map[uint64]string
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of remembered positions (0 = unlimited)
	maxCapacity int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64]string),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records that game name reached the position hash. If an
// earlier game already reached it, that game's name is returned with true.
// Once the detector is full new positions are no longer remembered.
func (d *DuplicateDetector) CheckAndAdd(name string, hash uint64) (string, bool) {
	if first, ok := d.hashTable[hash]; ok {
		d.duplicateCount++
		return first, true
	}
	if !d.IsFull() {
		d.hashTable[hash] = name
	}
	return "", false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions remembered.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.hashTable)
}

// IsFull reports whether the detector has reached its capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.hashTable) >= d.maxCapacity
}
