package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quietbooks/quietbooks/internal/apperrors"
)

// BaseRepository holds the shared database handle and transaction helper.
// SQLite serializes writers; every write method runs inside one
// transaction so an entry and its lines land together or not at all.
type BaseRepository struct {
	db *sql.DB
}

// NewBaseRepository creates a base repository over the shared handle.
func NewBaseRepository(db *sql.DB) BaseRepository {
	return BaseRepository{db: db}
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// notFound maps sql.ErrNoRows onto the domain sentinel.
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return err
}

// nullStr converts an empty string to NULL on the way in.
func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// strOrEmpty converts a nullable column back to a plain string.
func strOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
