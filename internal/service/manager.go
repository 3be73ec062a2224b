// Package service keeps live game sessions, persists them through a
// storage.Store and restores them by replaying their history.
package service

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// session is one live game. Commands on a session are serialised by mu.
type session struct {
	mu   sync.Mutex
	rec  *storage.Record
	game engine.Game
	last error
	gone bool // deleted; nothing may be saved for it again
}

func (s *session) snapshot() *output.Snapshot {
	return output.GameToJSON(s.rec.ID, s.game, s.last)
}

// Manager owns the live sessions.
type Manager struct {
	store    storage.Store
	rules    engine.Rules
	sessions map[string]*session
	mu       sync.RWMutex
	now      func() time.Time
}

// NewManager creates a Manager that stores games in store and starts new
// games under rules.
func NewManager(store storage.Store, rules engine.Rules) *Manager {
	return &Manager{
		store:    store,
		rules:    rules,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Create starts a new game from fen, or from the standard position when
// fen is empty.
func (m *Manager) Create(fen string) (*output.Snapshot, error) {
	game := engine.NewGame(m.rules)
	if fen != "" && fen != chess.InitialFEN {
		g, err := engine.NewGameFromFEN(fen, m.rules)
		if err != nil {
			return nil, err
		}
		game = g
	} else {
		fen = ""
	}

	now := m.now().UTC()
	rec := &storage.Record{
		ID:             uuid.New().String(),
		FEN:            fen,
		KingRule:       m.rules.King.String(),
		PawnDoubleStep: m.rules.PawnDoubleStep,
		Moves:          []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := m.store.Save(rec); err != nil {
		return nil, errors.Wrap(err, "save new game")
	}

	s := &session{rec: rec, game: game}
	m.mu.Lock()
	m.sessions[rec.ID] = s
	m.mu.Unlock()

	log.Infof("game %s created", rec.ID)
	return s.snapshot(), nil
}

// Get returns the current snapshot of a game.
func (m *Manager) Get(id string) (*output.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// Play applies one command to a game. A rejected command returns the
// unchanged game's snapshot together with a *errors.MoveError; the turn
// does not pass.
func (m *Manager) Play(id, text string) (*output.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	return m.play(s, id, text)
}

func (m *Manager) play(s *session, id, text string) (*output.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "play %s", id)
	}

	next, err := s.game.PlayNotation(text)
	if err != nil {
		s.last = err
		log.Debugf("game %s: %q rejected: %v", id, text, err)
		return s.snapshot(), err
	}

	rec := s.rec.Clone()
	rec.Moves = append(rec.Moves, text)
	rec.UpdatedAt = m.now().UTC()
	if err := m.store.Save(rec); err != nil {
		log.Errorf("game %s: save: %v", id, err)
		return nil, errors.Wrapf(err, "save game %s", id)
	}

	s.rec = rec
	s.game = next
	s.last = nil
	return s.snapshot(), nil
}

// Targets lists the squares the piece on square could be sent to in the
// current position, whichever side it belongs to.
func (m *Manager) Targets(id, square string) ([]string, error) {
	from, ok := chess.ParseSquare(square)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "%q", square)
	}
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	targets := []string{}
	for _, sq := range s.game.Targets(from) {
		targets = append(targets, sq.String())
	}
	return targets, nil
}

// List returns the ids of all stored games.
func (m *Manager) List() ([]string, error) {
	return m.store.List()
}

// Delete drops a game from memory and from the store. A command that
// was already waiting on the game fails with ErrGameNotFound.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.gone = true
	}
	return m.store.Delete(id)
}

// session returns the live session for id, restoring it from the store
// when it is not in memory.
func (m *Manager) session(id string) (*session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	rec, err := m.store.Load(id)
	if err != nil {
		return nil, err
	}
	game, err := Restore(rec)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	s = &session{rec: rec, game: game}
	m.sessions[id] = s
	log.Infof("game %s restored after %d moves", id, len(rec.Moves))
	return s, nil
}

// Restore rebuilds a game from its record by replaying every stored move
// under the rules the game was created with.
func Restore(rec *storage.Record) (engine.Game, error) {
	king, ok := engine.ParseKingRule(rec.KingRule)
	if !ok {
		return engine.Game{}, errors.Wrapf(errors.ErrInvalidConfig, "game %s: king rule %q", rec.ID, rec.KingRule)
	}
	rules := engine.Rules{King: king, PawnDoubleStep: rec.PawnDoubleStep}

	game := engine.NewGame(rules)
	if rec.FEN != "" {
		g, err := engine.NewGameFromFEN(rec.FEN, rules)
		if err != nil {
			return engine.Game{}, errors.Wrapf(err, "game %s", rec.ID)
		}
		game = g
	}

	for _, text := range rec.Moves {
		next, err := game.PlayNotation(text)
		if err != nil {
			return engine.Game{}, errors.Wrapf(err, "game %s: stored history", rec.ID)
		}
		game = next
	}
	return game, nil
}
