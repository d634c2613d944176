package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/careerpath/internal/types"
)

// GetCachedEvents returns the cache document, or nil when the cache was never filled.
func (db *DB) GetCachedEvents(ctx context.Context) (*types.EventCache, error) {
	return findOne[types.EventCache](ctx, db, tableEvents, nil)
}

// SetCachedEvents deletes every cached document and inserts the new snapshot in one transaction.
func (db *DB) SetCachedEvents(ctx context.Context, events []json.RawMessage) (cache *types.EventCache, err error) {
	if events == nil {
		events = []json.RawMessage{}
	}
	cache = &types.EventCache{Events: events, CachedAt: db.now()}
	doc, err := json.Marshal(cache)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event cache: %w", err)
	}

	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin event cache transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			cache, err = nil, fmt.Errorf("failed to commit event cache: %w", e)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM `+tableEvents); err != nil {
		return nil, fmt.Errorf("failed to clear event cache: %w", err)
	}
	if _, err = tx.Exec(ctx, `INSERT INTO `+tableEvents+` (doc) VALUES ($1::jsonb)`, string(doc)); err != nil {
		return nil, fmt.Errorf("failed to store event cache: %w", err)
	}
	return cache, nil
}
