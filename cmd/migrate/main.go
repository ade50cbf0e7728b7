package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/seed"
	"github.com/portfolio/backend/internal/service"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   create missing collections/tables and indexes, seed empty collections
  reset       drop projects and contacts, then recreate and reseed`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "" && cmd != "reset" {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := repository.Open(ctx, cfg.StoreURL(), cfg.DatabaseName)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			slog.Error("close store failed", "error", err)
		}
	}()

	if cmd == "reset" {
		runDrop(ctx, store)
	}
	runEnsure(ctx, store)
	runSeed(ctx, store)
}

func runDrop(ctx context.Context, store *repository.Store) {
	slog.Info("dropping projects and contacts", "backend", store.Backend)
	if err := store.Schema.Drop(ctx); err != nil {
		logging.Fatal("drop failed", "error", err)
	}
	slog.Info("collections dropped")
}

func runEnsure(ctx context.Context, store *repository.Store) {
	if err := store.Schema.Ensure(ctx); err != nil {
		logging.Fatal("ensure schema failed", "error", err)
	}
	slog.Info("schema ready", "backend", store.Backend)
}

func runSeed(ctx context.Context, store *repository.Store) {
	res, err := seed.New(store.Projects, store.Contacts, service.Now).Run(ctx)
	if err != nil {
		logging.Fatal("seed failed", "error", err)
	}
	if res.Projects == 0 && res.Contacts == 0 {
		slog.Info("collections already populated, nothing seeded")
		return
	}
	slog.Info("seed completed", "projects", res.Projects, "contacts", res.Contacts)
}
