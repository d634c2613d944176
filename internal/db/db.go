// Package db provides the PostgreSQL document-store backend.
//
// Each collection is a table of JSONB documents. The application id lives inside the document;
// the table's pk only orders rows. Catalog collections fall back to the built-in catalog when
// the remote collection has nothing to return.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/careerpath/internal/session"
	"github.com/jonathan/careerpath/internal/storage"
)

// PgxPool is the subset of a connection pool the store uses.
// It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Close()
}

// DB is the document-store implementation of storage.Store.
type DB struct {
	pool     PgxPool
	sessions session.Store
	now      func() time.Time
}

var _ storage.Store = (*DB)(nil)

// Option configures a DB.
type Option func(*DB)

// WithSessions replaces the default 24-hour memory session store.
func WithSessions(s session.Store) Option {
	return func(db *DB) { db.sessions = s }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) { db.now = now }
}

// New wraps an existing pool.
func New(pool PgxPool, opts ...Option) *DB {
	db := &DB{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.sessions == nil {
		db.sessions = session.NewMemoryStore(session.DefaultCheckPeriod)
	}
	return db
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string, opts ...Option) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(pool, opts...), nil
}

// Backend names this implementation.
func (db *DB) Backend() string { return "document" }

// Sessions returns the session store created with this instance.
func (db *DB) Sessions() session.Store { return db.sessions }

// Close closes the connection pool and the session store.
func (db *DB) Close() {
	if db.sessions != nil {
		_ = db.sessions.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}
