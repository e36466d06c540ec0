package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const queryTimeout = 5 * time.Second

// SQLiteKV stores values in a single key/value table
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV opens the database and ensures the schema
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLiteKV{db: db}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteKV) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS app_settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Get reads a value by key
func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set upserts a value
func (s *SQLiteKV) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_settings(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	return err
}

// Close closes the database handle
func (s *SQLiteKV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
