package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	capture   key.Binding
	reshuffle key.Binding
	skip      key.Binding
	endEarly  key.Binding
	chat      key.Binding
	voice     key.Binding
	enter     key.Binding
	again     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

var defaultKeymap = keymap{
	capture: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "capture"),
	),
	reshuffle: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reshuffle"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	endEarly: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end early"),
	),
	chat: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "chat"),
	),
	voice: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "voice input"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "more activities"),
	),
	again: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new photo"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
