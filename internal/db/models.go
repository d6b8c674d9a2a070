package db

import (
	"time"

	"github.com/google/uuid"
)

// Track represents a generated track and its stored audio metadata. The
// encoded WAV bytes live in the same row but are only loaded by GetAudio.
type Track struct {
	ID              uuid.UUID
	SourceText      string
	Mood            string
	Confidence      float64
	Tempo           int
	Key             string
	Scale           string
	Rhythm          string
	Seed            int64
	DurationSeconds float64
	SampleRate      int
	Energy          float64
	Brightness      float64
	CreatedAt       time.Time
}
