package store

import (
	"time"

	"github.com/ayoisaiah/moodlift/internal/models"
)

// DB is the history store interface.
type DB interface {
	// SaveSession writes a finished session record. An existing record
	// with the same start time is overwritten.
	SaveSession(rec *models.SessionRecord) error
	// GetSessions returns saved session records according to the time
	// and tag constraints.
	GetSessions(
		startTime, endTime time.Time,
		tags []string,
	) ([]*models.SessionRecord, error)
	// DeleteSessions deletes one or more saved session records.
	DeleteSessions(recs []*models.SessionRecord) error
	// Close ends the database connection.
	Close() error
	// Open begins a database connection.
	Open() error
}
