// Package storage persists games as their starting position and the list
// of accepted commands. Loading a game replays those commands.
package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Record is a stored game.
type Record struct {
	ID             string    `json:"id"`
	FEN            string    `json:"fen,omitempty"` // empty for the standard start
	KingRule       string    `json:"king_rule"`
	PawnDoubleStep bool      `json:"pawn_double_step"`
	Moves          []string  `json:"moves"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Moves = append([]string(nil), r.Moves...)
	return &c
}

// Store keeps game records by id.
type Store interface {
	// Save creates or replaces a record.
	Save(rec *Record) error

	// Load returns the record for id, or ErrGameNotFound.
	Load(id string) (*Record, error)

	// List returns the ids of all stored games in sorted order.
	List() ([]string, error)

	// Delete removes a record. Deleting an unknown id is not an error.
	Delete(id string) error

	// Close releases the store.
	Close() error
}

// MemoryStore is a Store backed by a map.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Save stores a copy of rec.
func (m *MemoryStore) Save(rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec.Clone()
	return nil
}

// Load returns a copy of the record for id.
func (m *MemoryStore) Load(id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "load %s", id)
	}
	return rec.Clone(), nil
}

// List returns the stored ids.
func (m *MemoryStore) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes the record for id.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
