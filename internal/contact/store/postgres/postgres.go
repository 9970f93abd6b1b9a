// Package postgres implements the contact stores over database/sql. Every
// store is tx-aware: when the context carries a transaction (tx.WithTx), all
// statements run on it, which is how multi-row operations stay atomic.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/platform/tx"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func q(ctx context.Context, db *sql.DB) querier {
	if sqlTx, ok := tx.From(ctx); ok {
		return sqlTx
	}
	return db
}

// writeErr maps integrity-constraint violations (pq class 23: unique, foreign
// key, not null) onto sentinel.ErrConflict so services can tell a constrained
// write from an infrastructure failure.
func writeErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%s: %w", pqErr.Message, sentinel.ErrConflict)
	}
	return err
}
