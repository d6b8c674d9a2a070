package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TrackRepository handles generated track database operations.
type TrackRepository struct {
	pool *pgxpool.Pool
}

// Insert stores a track together with its encoded audio.
func (r *TrackRepository) Insert(ctx context.Context, track *Track, audio []byte) error {
	query := `
		INSERT INTO tracks (id, source_text, mood, confidence, tempo, key, scale, rhythm,
			seed, duration_seconds, sample_rate, energy, brightness, audio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query,
		track.ID,
		track.SourceText,
		track.Mood,
		track.Confidence,
		track.Tempo,
		track.Key,
		track.Scale,
		track.Rhythm,
		track.Seed,
		track.DurationSeconds,
		track.SampleRate,
		track.Energy,
		track.Brightness,
		audio,
	).Scan(&track.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting track: %w", err)
	}
	return nil
}

// Get retrieves a track's metadata by ID.
func (r *TrackRepository) Get(ctx context.Context, id uuid.UUID) (*Track, error) {
	query := `
		SELECT id, source_text, mood, confidence, tempo, key, scale, rhythm,
			seed, duration_seconds, sample_rate, energy, brightness, created_at
		FROM tracks
		WHERE id = $1
	`
	var track Track
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&track.ID,
		&track.SourceText,
		&track.Mood,
		&track.Confidence,
		&track.Tempo,
		&track.Key,
		&track.Scale,
		&track.Rhythm,
		&track.Seed,
		&track.DurationSeconds,
		&track.SampleRate,
		&track.Energy,
		&track.Brightness,
		&track.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying track: %w", err)
	}
	return &track, nil
}

// GetAudio retrieves the encoded WAV bytes for a track.
func (r *TrackRepository) GetAudio(ctx context.Context, id uuid.UUID) ([]byte, error) {
	query := `SELECT audio FROM tracks WHERE id = $1`
	var audio []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&audio)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying track audio: %w", err)
	}
	return audio, nil
}

// List retrieves all track metadata, newest first.
func (r *TrackRepository) List(ctx context.Context) ([]Track, error) {
	query := `
		SELECT id, source_text, mood, confidence, tempo, key, scale, rhythm,
			seed, duration_seconds, sample_rate, energy, brightness, created_at
		FROM tracks
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var track Track
		if err := rows.Scan(
			&track.ID,
			&track.SourceText,
			&track.Mood,
			&track.Confidence,
			&track.Tempo,
			&track.Key,
			&track.Scale,
			&track.Rhythm,
			&track.Seed,
			&track.DurationSeconds,
			&track.SampleRate,
			&track.Energy,
			&track.Brightness,
			&track.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}

// Delete removes a track and its audio.
func (r *TrackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting track: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
