package database

import (
	"context"
	"errors"
)

var ErrNoRows = errors.New("no rows in result set")

// Dialect selects placeholder and upsert syntax for the SQL-backed stores.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type DB interface {
	Dialect() Dialect
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

// Row.Scan returns ErrNoRows when the query matched nothing, whatever the driver.
type Row interface {
	Scan(dest ...any) error
}
