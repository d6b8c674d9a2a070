// Package db provides PostgreSQL database access for MoodTunes.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying connection pool for advanced operations.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Tracks returns a TrackRepository.
func (db *DB) Tracks() *TrackRepository {
	return &TrackRepository{pool: db.pool}
}

// EnsureSchema creates the tracks table if it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tracks (
			id UUID PRIMARY KEY,
			source_text TEXT NOT NULL,
			mood TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			tempo INT NOT NULL,
			key TEXT NOT NULL,
			scale TEXT NOT NULL,
			rhythm TEXT NOT NULL,
			seed BIGINT NOT NULL,
			duration_seconds DOUBLE PRECISION NOT NULL,
			sample_rate INT NOT NULL,
			energy DOUBLE PRECISION NOT NULL,
			brightness DOUBLE PRECISION NOT NULL,
			audio BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("creating tracks table: %w", err)
	}
	return nil
}
