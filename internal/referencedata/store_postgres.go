package referencedata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactregistry/pkg/platform/sentinel"
)

// PostgresStore reads the reference_codes catalogue. The catalogue is
// maintained by an upstream sync job; this store is read-only.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Lookup(ctx context.Context, group Group, code string) (*Code, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT group_code, code, description, display_order, active
		FROM reference_codes
		WHERE group_code = $1 AND upper(code) = upper($2)`,
		string(group), code)

	var entry Code
	if err := row.Scan(&entry.Group, &entry.Code, &entry.Description, &entry.DisplayOrder, &entry.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("lookup reference code: %w", err)
	}
	return &entry, nil
}

func (s *PostgresStore) ListByGroup(ctx context.Context, group Group) ([]*Code, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT group_code, code, description, display_order, active
		FROM reference_codes
		WHERE group_code = $1
		ORDER BY display_order, code`,
		string(group))
	if err != nil {
		return nil, fmt.Errorf("list reference codes: %w", err)
	}
	defer rows.Close()

	var entries []*Code
	for rows.Next() {
		var entry Code
		if err := rows.Scan(&entry.Group, &entry.Code, &entry.Description, &entry.DisplayOrder, &entry.Active); err != nil {
			return nil, fmt.Errorf("scan reference code: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reference codes: %w", err)
	}
	return entries, nil
}
