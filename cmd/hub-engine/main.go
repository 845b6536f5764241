package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/web3hub/hub-engine/internal/api"
	"github.com/web3hub/hub-engine/internal/chatbot"
	"github.com/web3hub/hub-engine/internal/cleanup"
	"github.com/web3hub/hub-engine/internal/config"
	"github.com/web3hub/hub-engine/internal/content"
	"github.com/web3hub/hub-engine/internal/session"
	"github.com/web3hub/hub-engine/internal/storage"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env for local development; absence is fine
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting hub-engine",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
		"content", cfg.Content.Provider,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Initialize lead repository
	var repo storage.Repository
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		slog.Info("running database migrations")
		if err := storage.MigrateFromDSN(initCtx, cfg.Storage.DSN); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		repo, err = storage.NewPostgresRepository(initCtx, storage.PostgresConfig{
			DSN: cfg.Storage.DSN,
		})
		if err != nil {
			slog.Error("failed to create database repository", "error", err)
			os.Exit(1)
		}
	case config.DriverSQLite:
		repo, err = storage.NewSQLiteRepository(cfg.Storage.SQLitePath)
		if err != nil {
			slog.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("lead store connected", "driver", cfg.Storage.Driver)

	// Initialize session store
	var store session.Store
	if cfg.Redis.Enabled {
		store, err = session.NewRedisStore(cfg.Redis.Address, cfg.Redis.Password)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.Info("redis session store connected", "address", cfg.Redis.Address)
	} else {
		store = session.NewMemoryStore()
		slog.Info("using in-memory session store")
	}

	// Select content provider
	var provider content.Provider
	switch cfg.Content.Provider {
	case config.ContentCMS:
		provider = content.NewCMSProvider(cfg.Content.CMSBaseURL, cfg.Content.CMSToken)
	default:
		provider = content.NewStaticProvider(cfg.Content.Dir)
	}

	// Load the content catalog. A failed load is sticky: the process
	// keeps serving, /ready answers 503 and content routes are
	// unavailable until a restart.
	catalog := content.NewCatalog()
	if err := catalog.Load(initCtx, provider); err != nil {
		slog.Error("content catalog load failed", "error", err)
	}

	// Initialize the AI completer. A missing key degrades chat and the
	// assistant widgets to their fixed fallback texts.
	var completer chatbot.Completer
	if cfg.AI.APIKey != "" {
		gemini, err := chatbot.NewGeminiCompleter(initCtx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			slog.Error("failed to create AI client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		completer = gemini
		slog.Info("AI completer ready", "model", cfg.AI.Model)
	} else {
		slog.Warn("GEMINI_API_KEY is not set, AI features will not function")
	}
	bot := chatbot.NewBot(completer)

	// Initialize session manager
	manager := session.NewManager(store, repo, catalog, bot, cfg.Session.TTL)

	// Initialize cleanup worker
	cleaner := cleanup.NewCleaner(manager, cfg.Cleanup.Interval)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup worker
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, manager, catalog, bot, repo, cfg.Admin.Token)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Close session store and lead repository
	if err := manager.Close(); err != nil {
		slog.Error("session store close error", "error", err)
	}
	if err := repo.Close(); err != nil {
		slog.Error("repository close error", "error", err)
	}

	slog.Info("hub-engine stopped")
}
