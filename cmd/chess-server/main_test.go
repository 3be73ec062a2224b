package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(listenAddr, "127.0.0.1:9999")()
	defer saveRestoreString(dataDir, "/var/lib/chess")()
	defer saveRestoreBool(noRequestLog, true)()
	defer saveRestoreString(kingRule, "adjacent")()
	defer saveRestoreBool(verbose, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Server.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.InMemory() {
		t.Error("InMemory() should be false with -data")
	}
	if cfg.Server.RequestLog {
		t.Error("RequestLog should be false with -norequestlog")
	}
	if got := cfg.EngineRules(); got.King != engine.KingAdjacent {
		t.Errorf("King = %v; want adjacent", got.King)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
	if serverOptions(cfg).RequestLog != nil {
		t.Error("request log should be disabled")
	}
}

func TestOpenStore(t *testing.T) {
	cfg := config.NewServerConfig()
	s, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if _, ok := s.(*storage.MemoryStore); !ok {
		t.Errorf("openStore() = %T; want *storage.MemoryStore", s)
	}

	cfg.DataDir = t.TempDir()
	s, err = openStore(cfg)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(*storage.BadgerStore); !ok {
		t.Errorf("openStore() = %T; want *storage.BadgerStore", s)
	}
}
