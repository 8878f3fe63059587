// Package store connects to the data store and manages the session history
package store

import (
	"encoding/json"
	"io/fs"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/moodlift/internal/apperr"
	"github.com/ayoisaiah/moodlift/internal/models"
	"github.com/ayoisaiah/moodlift/internal/timeutil"
)

const sessionBucket = "sessions"

var pathToDB string

var errAlreadyRunning = &apperr.Error{
	Message: "is moodlift already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func openDB(path string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(path, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	if err != nil {
		if err == bolt.ErrTimeout {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// NewClient opens the history store, creating the sessions bucket if
// necessary.
func NewClient(path string) (*Client, error) {
	pathToDB = path

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{db}

	return nil
}

func (c *Client) SaveSession(rec *models.SessionRecord) error {
	key := timeutil.ToKey(rec.StartTime)

	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put(key, value)
	})
}

func (c *Client) GetSessions(
	startTime, endTime time.Time,
	tags []string,
) ([]*models.SessionRecord, error) {
	var records []*models.SessionRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()

		min := timeutil.ToKey(startTime)
		max := timeutil.ToKey(endTime)

		for k, v := cur.Seek(min); k != nil && string(k) <= string(max); k, v = cur.Next() {
			var rec models.SessionRecord

			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}

			if !matchesTags(&rec, tags) {
				continue
			}

			records = append(records, &rec)
		}

		return nil
	})

	return records, err
}

func (c *Client) DeleteSessions(recs []*models.SessionRecord) error {
	return c.Update(func(tx *bolt.Tx) error {
		for i := range recs {
			key := timeutil.ToKey(recs[i].StartTime)

			err := tx.Bucket([]byte(sessionBucket)).Delete(key)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// matchesTags reports whether the record carries at least one of the
// requested tags. An empty filter matches everything.
func matchesTags(rec *models.SessionRecord, tags []string) bool {
	if len(tags) == 0 {
		return true
	}

	for _, t := range tags {
		if slices.Contains(rec.Tags, t) {
			return true
		}
	}

	return false
}
