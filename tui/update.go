package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/moodlift/internal/capture"
	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/emotion"
	"github.com/ayoisaiah/moodlift/internal/session"
)

const (
	captureTimeout = 45 * time.Second
	chatTimeout    = 45 * time.Second
)

type (
	tickMsg time.Time

	classifyDoneMsg struct {
		seq uint64
		res emotion.Result
		err error
	}

	chatReplyMsg struct {
		reply string
		err   error
	}

	transcribedMsg struct {
		text string
		err  error
	}
)

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// classifyCmd captures a still image and sends it for classification. The
// sequence number lets stale replies be discarded when a newer capture has
// been requested in the meantime.
func (m *Model) classifyCmd() tea.Cmd {
	seq := m.tracker.Next()
	imagePath := m.opts.CLI.ImagePath
	cameraCmd := m.opts.Capture.CameraCmd
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			captureTimeout,
		)
		defer cancel()

		payload, err := capture.Once(ctx, imagePath, cameraCmd)
		if err != nil {
			return classifyDoneMsg{seq: seq, err: err}
		}

		res, err := client.Classify(ctx, payload)

		return classifyDoneMsg{seq: seq, res: res, err: err}
	}
}

func (m *Model) chatCmd(text string) tea.Cmd {
	panel := m.panel

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()

		reply, err := panel.Fetch(ctx, text)

		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *Model) transcribeCmd() tea.Cmd {
	panel := m.panel

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
		defer cancel()

		text, err := panel.Transcribe(ctx)

		return transcribedMsg{text: text, err: err}
	}
}

// reshuffle draws a fresh suggestion round and rebuilds the selection form.
func (m *Model) reshuffle() {
	m.suggestions = m.catalog.Suggest(m.mood.Label)
	m.picked = nil
	m.durationInput = ""

	opts := make([]huh.Option[int], len(m.suggestions))

	for i, a := range m.suggestions {
		opts[i] = huh.NewOption(
			fmt.Sprintf("%s (%d min)", a.Title, a.DurationMinutes),
			i,
		)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Pick your activities").
				Description("They run back to back, in the order listed").
				Options(opts...).
				Value(&m.picked),
			huh.NewInput().
				Title("Minutes per activity (comma-separated, optional)").
				Placeholder("5, 10, 15").
				Value(&m.durationInput),
		),
	)
}

// handleTick advances the countdown and reacts to activity transitions.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.mgr.State() != session.Running {
		return m, nil
	}

	before := m.mgr.Snapshot()

	m.mgr.Tick()

	after := m.mgr.Snapshot()

	if activityEnded(before, after) {
		go m.notify(before.Current.Title)
	}

	if after.State == session.Completed {
		m.finishRun()
		m.view = doneView

		return m, nil
	}

	return m, tick()
}

// activityEnded reports whether a tick retired the activity that was
// current before it.
func activityEnded(before, after session.Snapshot) bool {
	if before.Current == nil {
		return false
	}

	return after.Current == nil || after.Current.Title != before.Current.Title
}

func (m *Model) handleClassifyDone(msg classifyDoneMsg) (tea.Model, tea.Cmd) {
	if !m.tracker.Latest(msg.seq) {
		return m, nil
	}

	m.classifying = false

	slog.Debug(spew.Sdump(msg))

	if msg.err != nil {
		m.statusErr = msg.err
		return m, nil
	}

	m.statusErr = nil
	m.mood = msg.res
	m.hasMood = true
	m.panel.SetEmotion(msg.res.Label)

	m.reshuffle()

	m.view = selectView

	return m, m.form.Init()
}

// startSession turns the completed form into an ordered selection and hands
// it to the session manager.
func (m *Model) startSession() (tea.Model, tea.Cmd) {
	durations := parseDurations(m.durationInput)

	selection := make([]catalog.Activity, 0, len(m.picked))

	for i, idx := range m.picked {
		act := m.suggestions[idx]

		if i < len(durations) && durations[i] > 0 {
			act.DurationMinutes = catalog.ClampDuration(durations[i])
		}

		selection = append(selection, act)
	}

	err := m.mgr.Start(selection)
	if err != nil {
		m.statusErr = err

		m.reshuffle()

		return m, m.form.Init()
	}

	m.statusErr = nil
	m.view = sessionView

	return m, tick()
}

// parseDurations reads a comma-separated minutes list. Entries that fail to
// parse come back as zero so the activity keeps its default duration.
func parseDurations(input string) []int {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parts := strings.Split(input, ",")

	out := make([]int, len(parts))

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}

		out[i] = n
	}

	return out
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.esc):
		m.chatOpen = false
		m.chatInput.Blur()

		return m, nil

	case key.Matches(msg, defaultKeymap.voice):
		if m.listening {
			return m, nil
		}

		m.listening = true

		return m, m.transcribeCmd()

	case key.Matches(msg, defaultKeymap.capture): // enter
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.panel.Pending() {
			return m, nil
		}

		m.panel.Send(text)
		m.chatInput.Reset()

		return m, m.chatCmd(text)
	}

	var cmd tea.Cmd

	m.chatInput, cmd = m.chatInput.Update(msg)

	return m, cmd
}

func (m *Model) handleSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.reshuffle):
		m.reshuffle()
		return m, m.form.Init()

	case key.Matches(msg, defaultKeymap.esc):
		m.view = captureView
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.startSession()
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.forceQuit) {
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	if m.chatOpen {
		return m.handleChatKey(msg)
	}

	if key.Matches(msg, defaultKeymap.chat) {
		m.chatOpen = true

		return m, tea.Batch(m.chatInput.Focus(), textinput.Blink)
	}

	switch m.view {
	case captureView:
		switch {
		case key.Matches(msg, defaultKeymap.capture):
			if m.classifying {
				return m, nil
			}

			m.classifying = true
			m.statusErr = nil

			return m, m.classifyCmd()

		case key.Matches(msg, defaultKeymap.quit):
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case selectView:
		return m.handleSelectKey(msg)

	case sessionView:
		switch {
		case key.Matches(msg, defaultKeymap.skip):
			m.mgr.Skip()

			if m.mgr.State() == session.Completed {
				m.finishRun()
				m.view = doneView
			}

			return m, nil

		case key.Matches(msg, defaultKeymap.endEarly):
			err := m.mgr.EndEarly()
			if err != nil {
				m.statusErr = err
				return m, nil
			}

			m.finishRun()
			m.view = doneView

			return m, nil

		case key.Matches(msg, defaultKeymap.quit):
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case doneView:
		switch {
		case key.Matches(msg, defaultKeymap.enter):
			m.mgr.Reset()
			m.reshuffle()
			m.view = selectView

			return m, m.form.Init()

		case key.Matches(msg, defaultKeymap.again):
			m.mgr.Reset()
			m.view = captureView

			return m, nil

		case key.Matches(msg, defaultKeymap.quit):
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()

	case classifyDoneMsg:
		return m.handleClassifyDone(msg)

	case chatReplyMsg:
		m.panel.Resolve(msg.reply, msg.err)
		return m, nil

	case transcribedMsg:
		m.listening = false

		if msg.err != nil {
			m.statusErr = msg.err
			return m, nil
		}

		m.chatInput.SetValue(msg.text)

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	// Non-key messages still need to reach the form (e.g. spinner frames).
	if m.view == selectView && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		return m, cmd
	}

	return m, nil
}
