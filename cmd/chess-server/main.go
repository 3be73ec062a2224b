// chess-server serves games over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/service"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)

	store, err := openStore(cfg.Server)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	games := service.NewManager(store, cfg.EngineRules())
	app := server.New(games, serverOptions(cfg))

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Infof("listening on %s", cfg.Server.ListenAddr)
	if err := app.Listen(cfg.Server.ListenAddr); err != nil {
		log.Errorf("listen: %v", err)
	}
}

// openStore opens the badger store in the data directory, or an
// in-memory store when none is configured.
func openStore(cfg *config.ServerConfig) (storage.Store, error) {
	if cfg.InMemory() {
		return storage.NewMemoryStore(), nil
	}
	return storage.OpenBadger(cfg.DataDir)
}

// setupLogging routes service logs to the log stream at the configured
// level.
func setupLogging(cfg *config.Config) {
	log.SetOutput(cfg.LogFile)
	switch cfg.Verbosity {
	case 0:
		log.SetLevel(log.LevelWarn)
	case 1:
		log.SetLevel(log.LevelInfo)
	default:
		log.SetLevel(log.LevelDebug)
	}
}

func serverOptions(cfg *config.Config) server.Options {
	var opts server.Options
	if cfg.Server.RequestLog {
		opts.RequestLog = cfg.LogFile
	}
	return opts
}
