package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/moodlift/internal/chat"
	"github.com/ayoisaiah/moodlift/internal/session"
)

func (m *Model) captureViewRender() string {
	var s strings.Builder

	s.WriteString(m.style.main.Render("How are you feeling today?"))
	s.WriteString("\n\n")

	if m.opts.CLI.ImagePath != "" {
		s.WriteString(m.style.secondary.Render(
			"Press enter to classify " + m.opts.CLI.ImagePath,
		))
	} else {
		s.WriteString(m.style.secondary.Render(
			"Press enter to take a photo and detect your mood",
		))
	}

	if m.classifying {
		s.WriteString("\n\n")
		s.WriteString(m.style.hint.Render("Detecting your mood..."))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.capture,
		defaultKeymap.chat,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) moodLine() string {
	if !m.hasMood {
		return ""
	}

	if m.mood.HasConfidence {
		return fmt.Sprintf(
			"You seem %s (%.0f%% confidence)",
			m.mood.Label,
			m.mood.Confidence*100,
		)
	}

	return fmt.Sprintf("You seem %s", m.mood.Label)
}

func (m *Model) selectViewRender() string {
	var s strings.Builder

	s.WriteString(m.style.main.Render(m.moodLine()))
	s.WriteString("\n\n")
	s.WriteString(m.form.View())
	s.WriteString("\n")
	s.WriteString(m.style.hint.Render(
		"ctrl+r for different suggestions · esc to retake the photo",
	))

	return s.String()
}

func (m *Model) sessionViewRender() string {
	snap := m.mgr.Snapshot()

	if snap.Current == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.style.main.Render(snap.Current.Title))
	s.WriteString("\n")
	s.WriteString(m.style.secondary.Render(snap.Current.Description))
	s.WriteString("\n\n")
	s.WriteString(m.style.main.Render(snap.TimeRemaining()))
	s.WriteString("\n\n")

	total := snap.Current.DurationMinutes * 60

	var percent float64
	if total > 0 {
		percent = 1 - float64(snap.RemainingSeconds)/float64(total)
	}

	s.WriteString(m.progress.ViewAs(percent))

	if len(snap.Queue) > 0 {
		s.WriteString("\n\n")
		s.WriteString(m.style.secondary.Render("Up next:"))

		for _, a := range snap.Queue {
			s.WriteString("\n")
			s.WriteString(m.style.hint.Render(
				fmt.Sprintf("  %s (%d min)", a.Title, a.DurationMinutes),
			))
		}
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.skip,
		defaultKeymap.endEarly,
		defaultKeymap.chat,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) doneViewRender() string {
	var s strings.Builder

	title := "Session complete. Well done!"
	if m.lastOutcome == session.OutcomeEndedEarly {
		title = "Session ended early"
	}

	s.WriteString(m.style.main.Render(title))

	if len(m.lastDone) > 0 {
		s.WriteString("\n")

		for _, d := range m.lastDone {
			mark := "✓"
			if d.Skipped {
				mark = "→"
			}

			s.WriteString("\n")
			s.WriteString(m.style.secondary.Render(
				fmt.Sprintf("  %s %s", mark, d.Activity.Title),
			))
		}
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.again,
		defaultKeymap.chat,
		defaultKeymap.quit,
	}))

	return s.String()
}

// chatViewRender renders the assistant panel below the active view.
func (m *Model) chatViewRender() string {
	var s strings.Builder

	s.WriteString(m.style.main.Render("Assistant"))
	s.WriteString("\n")

	messages := m.panel.Messages()

	const visible = 8

	if len(messages) > visible {
		messages = messages[len(messages)-visible:]
	}

	if len(messages) == 0 {
		s.WriteString(m.style.secondary.Render("Try asking:"))

		for _, p := range m.panel.Prompts() {
			s.WriteString("\n")
			s.WriteString(m.style.hint.Render("  " + p))
		}

		if facts := chat.Facts(m.mood.Label); len(facts) > 0 {
			s.WriteString("\n\n")
			s.WriteString(m.style.secondary.Render(
				"Did you know? " + facts[0].Fact,
			))
		}
	}

	for _, msg := range messages {
		s.WriteString("\n")

		if msg.Sender == chat.SenderUser {
			s.WriteString(m.style.user.Render("you: ") + msg.Text)
		} else {
			s.WriteString(m.style.assistant.Render("assistant: ") + msg.Text)
		}
	}

	if m.panel.Pending() {
		s.WriteString("\n")
		s.WriteString(m.style.hint.Render("assistant is typing..."))
	}

	if m.listening {
		s.WriteString("\n")
		s.WriteString(m.style.hint.Render("listening..."))
	}

	s.WriteString("\n\n")
	s.WriteString(m.chatInput.View())
	s.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.voice,
		defaultKeymap.esc,
		defaultKeymap.forceQuit,
	}))

	return s.String()
}

func (m *Model) View() string {
	var view string

	switch m.view {
	case captureView:
		view = m.captureViewRender()
	case selectView:
		view = m.selectViewRender()
	case sessionView:
		view = m.sessionViewRender()
	case doneView:
		view = m.doneViewRender()
	}

	if m.statusErr != nil {
		view += "\n\n" + m.style.err.Render(m.statusErr.Error())
	}

	if m.chatOpen {
		view += "\n\n" + m.chatViewRender()
	}

	return m.style.base.Render(view)
}
