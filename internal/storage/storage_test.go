package storage

import (
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	mem, err := OpenBadgerInMemory()
	if err != nil {
		t.Fatalf("OpenBadgerInMemory: %v", err)
	}
	disk, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() {
		mem.Close()
		disk.Close()
	})
	return map[string]Store{
		"memory":           NewMemoryStore(),
		"badger":           disk,
		"badger in memory": mem,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rec := &Record{
		ID:             "b3c1",
		KingRule:       "reference",
		PawnDoubleStep: true,
		Moves:          []string{"e4", "e5", "Nf3"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			testutil.AssertNoError(t, s.Save(rec))

			got, err := s.Load("b3c1")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, rec)

			rec2 := rec.Clone()
			rec2.Moves = append(rec2.Moves, "Nc6")
			testutil.AssertNoError(t, s.Save(rec2))
			got, err = s.Load("b3c1")
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Moves, []string{"e4", "e5", "Nf3", "Nc6"})
			testutil.AssertEqual(t, len(rec.Moves), 3, "saved record is not aliased")
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load("missing")
			testutil.AssertRejection(t, err, errors.ErrGameNotFound)
		})
	}
}

func TestStore_ListDelete(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{"c", "a", "b"} {
				testutil.AssertNoError(t, s.Save(&Record{ID: id}))
			}
			ids, err := s.List()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ids, []string{"a", "b", "c"})

			testutil.AssertNoError(t, s.Delete("b"))
			testutil.AssertNoError(t, s.Delete("never-saved"))
			ids, err = s.List()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ids, []string{"a", "c"})

			_, err = s.Load("b")
			testutil.AssertRejection(t, err, errors.ErrGameNotFound)
		})
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	testutil.AssertNoError(t, s.Save(&Record{ID: "x", Moves: []string{"e4"}}))

	got, err := s.Load("x")
	testutil.AssertNoError(t, err)
	got.Moves[0] = "d4"

	again, err := s.Load("x")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again.Moves, []string{"e4"})
}
