// Package chat holds the assistant panel state: the append-only message
// log, the pending indicator, and the emotion-aware prompt suggestions.
package chat

import (
	"context"
	"fmt"

	"github.com/ayoisaiah/moodlift/internal/apperr"
	"github.com/ayoisaiah/moodlift/internal/emotion"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Apology is appended as the assistant's reply when the chat endpoint is
// unreachable.
const Apology = "Sorry, I couldn't reach the assistant. Please try again in a moment."

// ErrVoiceUnavailable is reported when no speech recogniser is configured.
var ErrVoiceUnavailable = &apperr.Error{
	Message: "voice input is not available",
}

// Message is a single chat log entry. Messages are never mutated after
// creation.
type Message struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// Completer requests an assistant reply for a user message.
type Completer interface {
	Chat(ctx context.Context, message string) (string, error)
}

// Recognizer converts speech to text.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// Transliterator rewrites recognised text into Latin script. Best-effort
// only: unmapped input passes through unchanged.
type Transliterator interface {
	Convert(text string) string
}

// Panel is the assistant panel state. It is not safe for concurrent use:
// all mutations must come from the UI event loop, with network replies
// delivered back to the loop via Resolve.
type Panel struct {
	completer  Completer
	recognizer Recognizer
	translit   Transliterator
	messages   []Message
	pending    bool
	label      emotion.Label
}

// Option configures a Panel.
type Option func(*Panel)

// WithRecognizer enables voice input through the given recogniser.
func WithRecognizer(r Recognizer) Option {
	return func(p *Panel) {
		p.recognizer = r
	}
}

// WithTransliterator overrides the default Hinglish transliteration table.
func WithTransliterator(t Transliterator) Option {
	return func(p *Panel) {
		p.translit = t
	}
}

// NewPanel creates an assistant panel backed by the given completer.
func NewPanel(completer Completer, opts ...Option) *Panel {
	p := &Panel{
		completer: completer,
		translit:  HinglishTable(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// SetEmotion updates the label used to parameterise prompt suggestions.
func (p *Panel) SetEmotion(label emotion.Label) {
	p.label = label
}

// Send appends the user message synchronously and marks a reply as pending.
// The caller is expected to follow up with Fetch and Resolve. Further input
// is not blocked while a reply is pending.
func (p *Panel) Send(text string) {
	p.messages = append(p.messages, Message{Text: text, Sender: SenderUser})
	p.pending = true
}

// Fetch requests the assistant's reply. It is safe to call off the UI loop;
// the result must be handed back to the loop through Resolve.
func (p *Panel) Fetch(ctx context.Context, text string) (string, error) {
	return p.completer.Chat(ctx, text)
}

// Resolve appends the assistant's reply, or a fixed apology when the
// request failed, and clears the pending indicator.
func (p *Panel) Resolve(reply string, err error) {
	if err != nil {
		reply = Apology
	}

	p.messages = append(
		p.messages,
		Message{Text: reply, Sender: SenderAssistant},
	)
	p.pending = false
}

// Pending reports whether a reply is outstanding.
func (p *Panel) Pending() bool {
	return p.pending
}

// Messages returns a copy of the message log in order.
func (p *Panel) Messages() []Message {
	out := make([]Message, len(p.messages))
	copy(out, p.messages)

	return out
}

// Transcribe listens for speech and returns the recognised text, rewritten
// into Latin script when it contains Devanagari characters.
func (p *Panel) Transcribe(ctx context.Context) (string, error) {
	if p.recognizer == nil {
		return "", ErrVoiceUnavailable
	}

	text, err := p.recognizer.Listen(ctx)
	if err != nil {
		return "", err
	}

	if containsDevanagari(text) {
		text = p.translit.Convert(text)
	}

	return text, nil
}

// Prompts returns suggested starter messages for the current emotion. The
// suggestions are static templates and carry no state.
func (p *Panel) Prompts() []string {
	if p.label == "" {
		return []string{
			"Tell me interesting facts about my current mood",
			"Suggest music that matches how I'm feeling",
			"What activities would help improve my mood?",
		}
	}

	prompts := []string{
		fmt.Sprintf("Tell me interesting facts about %s", p.label),
		fmt.Sprintf("Suggest music that matches my %s mood", p.label),
		fmt.Sprintf("What activities would help with my %s mood?", p.label),
	}

	switch p.label {
	case emotion.Sad:
		prompts = append(prompts, "How can I lift my spirits when feeling down?")
	case emotion.Angry:
		prompts = append(prompts, "Share some calming techniques for anger")
	case emotion.Happy:
		prompts = append(prompts, "How can I spread positivity to others?")
	}

	return prompts
}
