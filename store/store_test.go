package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/ayoisaiah/moodlift/internal/emotion"
	"github.com/ayoisaiah/moodlift/internal/models"
	"github.com/ayoisaiah/moodlift/store"
)

func newTestClient(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "moodlift.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func record(start time.Time, label emotion.Label, tags []string) *models.SessionRecord {
	return &models.SessionRecord{
		ID:        uuid.NewString(),
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Emotion:   label,
		Tags:      tags,
		Activities: []models.SessionActivity{
			{
				Title:           "Go for a short walk",
				DurationMinutes: 15,
			},
		},
	}
}

func TestSaveAndGetSessions(t *testing.T) {
	db := newTestClient(t)

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	first := record(base, emotion.Sad, []string{"morning"})
	second := record(base.Add(2*time.Hour), emotion.Happy, nil)

	for _, rec := range []*models.SessionRecord{first, second} {
		if err := db.SaveSession(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.GetSessions(
		base.Add(-time.Hour),
		base.Add(24*time.Hour),
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []*models.SessionRecord{first, second}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSessionsHonoursTimeRange(t *testing.T) {
	db := newTestClient(t)

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	inside := record(base, emotion.Happy, nil)
	outside := record(base.Add(48*time.Hour), emotion.Happy, nil)

	for _, rec := range []*models.SessionRecord{inside, outside} {
		if err := db.SaveSession(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.GetSessions(base.Add(-time.Hour), base.Add(time.Hour), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != inside.ID {
		t.Fatalf("expected only the in-range record, got %d records", len(got))
	}
}

func TestGetSessionsFiltersByTag(t *testing.T) {
	db := newTestClient(t)

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	tagged := record(base, emotion.Angry, []string{"work", "evening"})
	untagged := record(base.Add(time.Hour), emotion.Angry, nil)

	for _, rec := range []*models.SessionRecord{tagged, untagged} {
		if err := db.SaveSession(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.GetSessions(
		base.Add(-time.Hour),
		base.Add(24*time.Hour),
		[]string{"work"},
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != tagged.ID {
		t.Fatalf("expected only the tagged record, got %d records", len(got))
	}
}

func TestSaveSessionOverwritesSameStartTime(t *testing.T) {
	db := newTestClient(t)

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	rec := record(base, emotion.Neutral, nil)

	if err := db.SaveSession(rec); err != nil {
		t.Fatal(err)
	}

	rec.EndedEarly = true

	if err := db.SaveSession(rec); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetSessions(base.Add(-time.Hour), base.Add(time.Hour), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 record after overwrite, got %d", len(got))
	}

	if !got[0].EndedEarly {
		t.Fatal("expected the overwritten record to be returned")
	}
}

func TestDeleteSessions(t *testing.T) {
	db := newTestClient(t)

	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	first := record(base, emotion.Happy, nil)
	second := record(base.Add(time.Hour), emotion.Sad, nil)

	for _, rec := range []*models.SessionRecord{first, second} {
		if err := db.SaveSession(rec); err != nil {
			t.Fatal(err)
		}
	}

	if err := db.DeleteSessions([]*models.SessionRecord{first}); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetSessions(base.Add(-time.Hour), base.Add(24*time.Hour), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("expected only the second record to remain, got %d", len(got))
	}
}
