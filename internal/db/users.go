package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/careerpath/internal/errs"
	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// GetUser retrieves a user by id
func (db *DB) GetUser(ctx context.Context, id string) (*types.User, error) {
	return findOne[types.User](ctx, db, tableUsers, byID(id))
}

// GetUserByUsername retrieves a user by username
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return findOne[types.User](ctx, db, tableUsers, filter{"username": username})
}

// CreateUser stores a new account. Username uniqueness is checked by the caller and by the
// users_username_idx unique index.
func (db *DB) CreateUser(ctx context.Context, u types.NewUser) (*types.User, error) {
	user := &types.User{ID: storage.NewID(), Username: u.Username, Password: u.Password}
	if err := insertDoc(ctx, db, tableUsers, user); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", u.Username, errs.ErrAlreadyExists)
		}
		return nil, err
	}
	return user, nil
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}
