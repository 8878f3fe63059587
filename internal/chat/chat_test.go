package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/moodlift/internal/chat"
	"github.com/ayoisaiah/moodlift/internal/emotion"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Chat(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Listen(_ context.Context) (string, error) {
	return f.text, f.err
}

func TestPanelSendAndResolve(t *testing.T) {
	p := chat.NewPanel(&fakeCompleter{reply: "hello there"})

	p.Send("hi")

	if !p.Pending() {
		t.Fatal("expected a pending reply after send")
	}

	reply, err := p.Fetch(context.Background(), "hi")
	p.Resolve(reply, err)

	if p.Pending() {
		t.Fatal("expected pending to clear after resolve")
	}

	want := []chat.Message{
		{Text: "hi", Sender: chat.SenderUser},
		{Text: "hello there", Sender: chat.SenderAssistant},
	}

	if diff := cmp.Diff(want, p.Messages()); diff != "" {
		t.Fatalf("message log mismatch (-want +got):\n%s", diff)
	}
}

func TestPanelApologisesOnFailure(t *testing.T) {
	p := chat.NewPanel(&fakeCompleter{err: errors.New("connection refused")})

	p.Send("hi")

	reply, err := p.Fetch(context.Background(), "hi")
	p.Resolve(reply, err)

	messages := p.Messages()

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	last := messages[len(messages)-1]

	if last.Sender != chat.SenderAssistant || last.Text != chat.Apology {
		t.Fatalf("expected the fixed apology, got %+v", last)
	}

	if p.Pending() {
		t.Fatal("expected pending to clear after a failed reply")
	}
}

func TestPanelMessagesReturnsCopy(t *testing.T) {
	p := chat.NewPanel(&fakeCompleter{})

	p.Send("original")

	messages := p.Messages()
	messages[0].Text = "mutated"

	if p.Messages()[0].Text != "original" {
		t.Fatal("expected the panel log to be unaffected by caller mutation")
	}
}

func TestPromptsFollowEmotion(t *testing.T) {
	p := chat.NewPanel(&fakeCompleter{})

	generic := p.Prompts()
	if len(generic) == 0 {
		t.Fatal("expected generic prompts before any classification")
	}

	p.SetEmotion(emotion.Sad)

	prompts := p.Prompts()

	if len(prompts) != 4 {
		t.Fatalf("expected 4 prompts for sad, got %d", len(prompts))
	}

	if prompts[0] != "Tell me interesting facts about sad" {
		t.Fatalf("unexpected first prompt: %q", prompts[0])
	}

	last := prompts[len(prompts)-1]
	if last != "How can I lift my spirits when feeling down?" {
		t.Fatalf("expected the sad-specific prompt, got %q", last)
	}
}

func TestFactsFallBackToNeutral(t *testing.T) {
	if len(chat.Facts(emotion.Happy)) == 0 {
		t.Fatal("expected facts for a known mood")
	}

	got := chat.Facts(emotion.Label("bewildered"))
	want := chat.Facts(emotion.Neutral)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected neutral fallback (-want +got):\n%s", diff)
	}
}

func TestTranscribeWithoutRecognizer(t *testing.T) {
	p := chat.NewPanel(&fakeCompleter{})

	_, err := p.Transcribe(context.Background())
	if !errors.Is(err, chat.ErrVoiceUnavailable) {
		t.Fatalf("expected ErrVoiceUnavailable, got %v", err)
	}
}

func TestTranscribeRewritesDevanagari(t *testing.T) {
	p := chat.NewPanel(
		&fakeCompleter{},
		chat.WithRecognizer(&fakeRecognizer{text: "नमस्ते"}),
	)

	got, err := p.Transcribe(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got != "namaste" {
		t.Fatalf("expected transliterated text, got %q", got)
	}
}

func TestTranscribePassesLatinThrough(t *testing.T) {
	p := chat.NewPanel(
		&fakeCompleter{},
		chat.WithRecognizer(&fakeRecognizer{text: "feeling great today"}),
	)

	got, err := p.Transcribe(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if got != "feeling great today" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}
