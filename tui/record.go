package tui

import (
	"log/slog"
	"os/exec"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/moodlift/internal/models"
	"github.com/ayoisaiah/moodlift/internal/session"
)

// finishRun captures the outcome of the run for the summary screen,
// persists it to the history store, and fires the configured follow-ups.
func (m *Model) finishRun() {
	snap := m.mgr.Snapshot()

	m.lastOutcome = snap.Outcome
	m.lastDone = m.mgr.Done()

	m.saveRecord(snap)

	go m.runSessionCmd()
}

// saveRecord persists the finished run to the history store.
func (m *Model) saveRecord(snap session.Snapshot) {
	rec := &models.SessionRecord{
		ID:         uuid.NewString(),
		StartTime:  snap.StartedAt,
		EndTime:    snap.EndedAt,
		Emotion:    m.mood.Label,
		Tags:       m.opts.CLI.Tags,
		EndedEarly: snap.Outcome == session.OutcomeEndedEarly,
	}

	for _, d := range m.mgr.Done() {
		rec.Activities = append(rec.Activities, models.SessionActivity{
			Title:           d.Activity.Title,
			Description:     d.Activity.Description,
			DurationMinutes: d.Activity.DurationMinutes,
			Skipped:         d.Skipped,
		})
	}

	err := m.db.SaveSession(rec)
	if err != nil {
		slog.Error("unable to save session", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured post-session command.
func (m *Model) runSessionCmd() {
	sessionCmd := m.opts.Settings.SessionCmd
	if sessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		slog.Error(
			"unable to parse session command",
			slog.Any("error", err),
		)

		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	err = cmd.Run()
	if err != nil {
		slog.Error("session command failed", slog.Any("error", err))
	}
}
