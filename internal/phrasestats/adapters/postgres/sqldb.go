package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

var _ RowScanner = (*sqlx.Rows)(nil)

// sqlxDB adapts *sqlx.DB to DB.
type sqlxDB struct {
	db *sqlx.DB
}

func NewSQLDB(db *sqlx.DB) DB {
	return &sqlxDB{db: db}
}

func (s *sqlxDB) QueryxContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
