package kv

import (
	"context"
	"errors"
	"fmt"

	"projectlink/internal/database"
)

const createTable = `CREATE TABLE IF NOT EXISTS kv_entries (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type sqlQueries struct {
	get    string
	upsert string
	del    string
}

var dialectQueries = map[database.Dialect]sqlQueries{
	database.DialectPostgres: {
		get:    `SELECT value FROM kv_entries WHERE key = $1`,
		upsert: `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP`,
		del:    `DELETE FROM kv_entries WHERE key = $1`,
	},
	database.DialectSQLite: {
		get:    `SELECT value FROM kv_entries WHERE key = ?`,
		upsert: `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		del:    `DELETE FROM kv_entries WHERE key = ?`,
	},
}

// SQL keeps one row per key in kv_entries. It serves both the Postgres pool
// and the SQLite file.
type SQL struct {
	db database.DB
	q  sqlQueries
}

func NewSQL(ctx context.Context, db database.DB) (*SQL, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}
	q, ok := dialectQueries[db.Dialect()]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", db.Dialect())
	}
	if _, err := db.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("create kv_entries: %w", err)
	}
	return &SQL{db: db, q: q}, nil
}

func (s *SQL) Name() string { return string(s.db.Dialect()) }

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v string
	if err := s.db.QueryRow(ctx, s.q.get, key).Scan(&v); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, s.q.upsert, key, string(value))
	return err
}

func (s *SQL) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if _, err := s.db.Exec(ctx, s.q.del, k); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *SQL) Close() error {
	return s.db.Close()
}
