package emotion_test

import (
	"testing"

	"github.com/ayoisaiah/moodlift/internal/emotion"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want emotion.Label
	}{
		{in: "happy", want: emotion.Happy},
		{in: "HAPPY", want: emotion.Happy},
		{in: "  sad ", want: emotion.Sad},
		// The classifier reports 'surprise'; the catalog key is 'surprised'.
		{in: "surprise", want: emotion.Surprised},
		{in: "Surprise", want: emotion.Surprised},
		{in: "surprised", want: emotion.Surprised},
		{in: "confused", want: emotion.Label("confused")},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := emotion.Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	for _, label := range emotion.Labels {
		if !label.Known() {
			t.Fatalf("expected %s to be known", label)
		}
	}

	if emotion.Label("confused").Known() {
		t.Fatal("expected unknown label to be reported as such")
	}
}
