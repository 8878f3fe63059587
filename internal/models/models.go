// Package models defines the records persisted to the history store.
package models

import (
	"time"

	"github.com/ayoisaiah/moodlift/internal/emotion"
)

// SessionActivity is one activity from a finished session.
type SessionActivity struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	// Skipped is true when the user moved past the activity before its
	// countdown expired.
	Skipped bool `json:"skipped"`
}

// SessionRecord is a finished activity session. Records are reporting-only:
// they are never read back into a live session.
type SessionRecord struct {
	ID         string            `json:"id"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Emotion    emotion.Label     `json:"emotion"`
	Activities []SessionActivity `json:"activities"`
	Tags       []string          `json:"tags"`
	EndedEarly bool              `json:"ended_early"`
}
