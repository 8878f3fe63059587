// Package tui drives the interactive flow: capture a photo, classify the
// mood, pick activities, and run them down one after the other.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/moodlift/internal/api"
	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/chat"
	"github.com/ayoisaiah/moodlift/internal/config"
	"github.com/ayoisaiah/moodlift/internal/emotion"
	"github.com/ayoisaiah/moodlift/internal/session"
	"github.com/ayoisaiah/moodlift/store"
)

const (
	padding  = 2
	maxWidth = 80
)

type view string

const (
	captureView view = "capture"
	selectView  view = "select"
	sessionView view = "session"
	doneView    view = "done"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	err       lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	accent := lipgloss.Color("36")
	if darkTheme {
		accent = lipgloss.Color("86")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		secondary: lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Faint(true).Italic(true),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		user:      lipgloss.NewStyle().Bold(true),
		assistant: lipgloss.NewStyle().Foreground(accent),
	}
}

// Model is the bubbletea model for the interactive flow.
type Model struct {
	opts    *config.Config
	db      store.DB
	client  *api.Client
	catalog *catalog.Catalog
	mgr     *session.Manager
	panel   *chat.Panel
	tracker *api.Tracker

	view        view
	classifying bool
	hasMood     bool
	mood        emotion.Result
	statusErr   error

	suggestions   []catalog.Activity
	picked        []int
	durationInput string
	form          *huh.Form

	lastOutcome session.Outcome
	lastDone    []session.Done

	chatOpen  bool
	listening bool
	chatInput textinput.Model

	progress progress.Model
	help     help.Model
	style    styles
}

// New assembles the interactive model from its dependencies.
func New(opts *config.Config, db store.DB, client *api.Client) *Model {
	panelOpts := []chat.Option{}

	if opts.Capture.VoiceCmd != "" {
		rec, err := chat.NewCommandRecognizer(opts.Capture.VoiceCmd)
		if err == nil && rec != nil {
			panelOpts = append(panelOpts, chat.WithRecognizer(rec))
		}
	}

	input := textinput.New()
	input.Placeholder = "Ask the assistant anything"
	input.CharLimit = 500

	m := &Model{
		opts:      opts,
		db:        db,
		client:    client,
		catalog:   catalog.New(nil),
		mgr:       session.New(nil),
		panel:     chat.NewPanel(client, panelOpts...),
		tracker:   &api.Tracker{},
		view:      captureView,
		chatInput: input,
		progress:  progress.New(progress.WithDefaultGradient()),
		help:      help.New(),
		style:     newStyles(opts.Display.DarkTheme),
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Run starts the bubbletea program and blocks until it exits.
func Run(m *Model) error {
	p := tea.NewProgram(m)

	_, err := p.Run()

	return err
}
