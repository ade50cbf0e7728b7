package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/seed"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(startCtx, cfg.StoreURL(), cfg.DatabaseName)
	if err != nil {
		cancelStart()
		logging.Fatal("failed to connect to database", "error", err)
	}
	if err := store.Schema.Ensure(startCtx); err != nil {
		cancelStart()
		logging.Fatal("ensure schema failed", "backend", store.Backend, "error", err)
	}
	if cfg.SeedOnStartup {
		if _, err := seed.New(store.Projects, store.Contacts, service.Now).Run(startCtx); err != nil {
			// A failed seed leaves an empty but usable store.
			slog.Error("seed failed", "error", err)
		}
	}
	cancelStart()

	projectService := service.NewProjectService(store.Projects)
	contactService := service.NewContactService(store.Contacts)

	uploads := storage.NewLocalStorage(cfg.UploadDir, "/uploads")

	router := handler.NewRouter(handler.Routes{
		Handler: handler.New(store.DB, handler.Options{
			CORSOrigin:     cfg.CORSOrigin,
			ServiceName:    cfg.ServiceName,
			ServiceVersion: cfg.ServiceVersion,
		}),
		Projects:     handler.NewProjectHandler(projectService),
		Contacts:     handler.NewContactHandler(contactService),
		Uploads:      handler.NewUploadHandler(uploads),
		UploadDir:    uploads.Dir(),
		WriteLimiter: handler.NewRateLimiter(cfg.ContactRateLimit, time.Minute).WithTrustedProxies(cfg.TrustedProxies),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "backend", store.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := store.Close(ctx); err != nil {
		slog.Error("close store failed", "error", err)
	}
	slog.Info("server stopped")
}
