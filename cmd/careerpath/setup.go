package main

import (
	"context"
	"fmt"

	"github.com/jonathan/careerpath/internal/config"
	"github.com/jonathan/careerpath/internal/db"
	"github.com/jonathan/careerpath/internal/logger"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/storage/memory"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openSessions picks the Redis session store when REDIS_URL is set.
func openSessions(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.RedisURL == "" {
		return session.NewMemoryStore(cfg.SessionCheckPeriod.Std()), nil
	}
	rdb, err := session.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return session.NewRedisStore(rdb, ""), nil
}

// openStore selects the backend once: the document store when DATABASE_URL is set,
// otherwise the seeded memory store. The document schema is migrated before connecting.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.Store, error) {
	sessions, err := openSessions(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.UsesDocumentStore() {
		log.Info("using in-memory storage")
		return memory.New(memory.WithSessions(sessions)), nil
	}

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		_ = sessions.Close()
		return nil, err
	}
	store, err := db.Connect(ctx, cfg.DatabaseURL, db.WithSessions(sessions))
	if err != nil {
		_ = sessions.Close()
		return nil, err
	}
	log.Info("using document storage")
	return store, nil
}

// requireDatabase returns the database URL for commands that only work against the
// document store.
func requireDatabase(cfg *config.Config) (string, error) {
	if !cfg.UsesDocumentStore() {
		return "", fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg.DatabaseURL, nil
}
