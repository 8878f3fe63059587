package timeutil_test

import (
	"testing"
	"time"

	"github.com/ayoisaiah/moodlift/internal/timeutil"
)

func TestFormatMMSS(t *testing.T) {
	cases := []struct {
		name string
		secs int
		want string
	}{
		{name: "zero", secs: 0, want: "00:00"},
		{name: "seconds only", secs: 59, want: "00:59"},
		{name: "exact minute", secs: 300, want: "05:00"},
		{name: "mixed", secs: 239, want: "03:59"},
		{name: "over an hour", secs: 3900, want: "65:00"},
		{name: "negative clamps to zero", secs: -5, want: "00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := timeutil.FormatMMSS(tc.secs); got != tc.want {
				t.Fatalf("FormatMMSS(%d) = %q, want %q", tc.secs, got, tc.want)
			}
		})
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	mins, secs := timeutil.SecsToMinsAndSecs(150.4)

	if mins != 2 || secs != 30 {
		t.Fatalf("expected 2m30s, got %dm%ds", mins, secs)
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	moment := time.Date(2025, time.March, 10, 14, 25, 36, 0, time.UTC)

	start := timeutil.RoundToStart(moment)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected start of day, got %v", start)
	}

	end := timeutil.RoundToEnd(moment)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("expected end of day, got %v", end)
	}
}

func TestToKeyOrdersChronologically(t *testing.T) {
	earlier := timeutil.ToKey(
		time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	)
	later := timeutil.ToKey(
		time.Date(2025, time.March, 10, 9, 0, 1, 0, time.UTC),
	)

	if string(earlier) >= string(later) {
		t.Fatal("expected keys to sort chronologically")
	}
}
