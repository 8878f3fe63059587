// Package session operates the sequential activity countdown. It owns the
// full lifecycle of a run: starting a queue of user-selected activities,
// advancing through them as each countdown expires or is skipped, and
// reporting how the run ended.
package session

import (
	"time"

	"github.com/ayoisaiah/moodlift/internal/apperr"
	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/timeutil"
)

// State is the lifecycle state of a session.
type State string

const (
	Idle      State = "idle"
	Running   State = "running"
	Completed State = "completed"
)

// Outcome records how the most recent run ended.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeCompleted  Outcome = "completed"
	OutcomeEndedEarly Outcome = "ended_early"
)

var (
	// ErrEmptySelection is reported when a session is started without any
	// selected activities.
	ErrEmptySelection = &apperr.Error{
		Message: "cannot start a session without any activities",
	}

	// ErrInvalidState is reported when an operation is not valid in the
	// current session state.
	ErrInvalidState = &apperr.Error{
		Message: "operation is not valid while the session is %s",
	}
)

// Done is an activity that has left the queue, and whether it ran its full
// countdown or was skipped by the user.
type Done struct {
	Activity catalog.Activity
	Skipped  bool
}

// Snapshot is a read-only view of the session for rendering. Queue holds
// only the activities not yet started.
type Snapshot struct {
	State            State
	Current          *catalog.Activity
	Queue            []catalog.Activity
	RemainingSeconds int
	Outcome          Outcome
	StartedAt        time.Time
	EndedAt          time.Time
}

// TimeRemaining formats the remaining countdown as MM:SS.
func (s Snapshot) TimeRemaining() string {
	return timeutil.FormatMMSS(s.RemainingSeconds)
}

// Manager owns the countdown for a single session at a time. The countdown
// is deadline-based: each activity stores a wall-clock deadline and the
// remaining time is recomputed from the clock on every tick, so throttled
// or coalesced ticks cannot drift the total or fire an advance twice.
//
// Manager is not safe for concurrent use. All transitions must come from a
// single call site (the UI event loop).
type Manager struct {
	clock     timeutil.Clock
	state     State
	current   *catalog.Activity
	queue     []catalog.Activity
	deadline  time.Time
	remaining int
	done      []Done
	outcome   Outcome
	startedAt time.Time
	endedAt   time.Time
}

// New creates an idle session manager. A nil clock defaults to the system
// clock.
func New(clock timeutil.Clock) *Manager {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}

	return &Manager{
		clock: clock,
		state: Idle,
	}
}

// Start begins a new session from the ordered selection. The first activity
// becomes current immediately and its countdown starts from its full
// duration. Starting is valid from any state and replaces a completed run.
func (m *Manager) Start(selection []catalog.Activity) error {
	if len(selection) == 0 {
		return ErrEmptySelection
	}

	queue := make([]catalog.Activity, len(selection))
	copy(queue, selection)

	m.state = Running
	m.queue = queue
	m.done = nil
	m.outcome = OutcomeNone
	m.startedAt = m.clock.Now()
	m.endedAt = time.Time{}

	m.promote()

	return nil
}

// promote pops the queue head into current and arms its deadline.
func (m *Manager) promote() {
	act := m.queue[0]
	m.queue = m.queue[1:]
	m.current = &act

	// Durations are validated at selection time; anything positive still
	// counts down correctly here.
	m.remaining = act.DurationMinutes * 60
	m.deadline = m.clock.Now().Add(time.Duration(m.remaining) * time.Second)
}

// Tick recomputes the remaining time from the deadline. When the countdown
// reaches zero the session advances to the next queued activity, or
// completes if the queue is empty. Tick is a no-op outside Running.
func (m *Manager) Tick() {
	if m.state != Running {
		return
	}

	remaining := timeutil.Round(m.deadline.Sub(m.clock.Now()).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	m.remaining = remaining

	if remaining == 0 {
		m.advance(false)
	}
}

// Skip drops the current activity and promotes the next queued one,
// completing the session if none remain. Skipping while Idle or Completed
// is a no-op.
func (m *Manager) Skip() {
	if m.state != Running {
		return
	}

	m.advance(true)
}

// advance retires the current activity and either promotes the next one or
// completes the session.
func (m *Manager) advance(skipped bool) {
	m.done = append(m.done, Done{Activity: *m.current, Skipped: skipped})

	if len(m.queue) > 0 {
		m.promote()
		return
	}

	m.current = nil
	m.remaining = 0
	m.state = Completed
	m.outcome = OutcomeCompleted
	m.endedAt = m.clock.Now()
}

// EndEarly terminates a running session without finishing the queued
// activities, returning the manager to Idle.
func (m *Manager) EndEarly() error {
	if m.state != Running {
		return ErrInvalidState.Fmt(m.state)
	}

	m.current = nil
	m.queue = nil
	m.remaining = 0
	m.state = Idle
	m.outcome = OutcomeEndedEarly
	m.endedAt = m.clock.Now()

	return nil
}

// Reset discards all session state, including the outcome of the previous
// run.
func (m *Manager) Reset() {
	*m = Manager{clock: m.clock, state: Idle}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Done returns the activities that have left the queue so far, in order.
func (m *Manager) Done() []Done {
	out := make([]Done, len(m.done))
	copy(out, m.done)

	return out
}

// Snapshot returns a read-only view of the session.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		State:            m.state,
		RemainingSeconds: m.remaining,
		Outcome:          m.outcome,
		StartedAt:        m.startedAt,
		EndedAt:          m.endedAt,
	}

	if m.current != nil {
		act := *m.current
		snap.Current = &act
	}

	if len(m.queue) > 0 {
		snap.Queue = make([]catalog.Activity, len(m.queue))
		copy(snap.Queue, m.queue)
	}

	return snap
}
