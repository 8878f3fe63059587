package catalog_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/natural"

	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/emotion"
)

func TestSuggestIsDeterministicForSeededSource(t *testing.T) {
	a := catalog.New(rand.New(rand.NewSource(42)))
	b := catalog.New(rand.New(rand.NewSource(42)))

	got := a.Suggest(emotion.Happy)
	want := b.Suggest(emotion.Happy)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("same seed produced different rounds (-want +got):\n%s", diff)
	}
}

func TestSuggestReturnsCatalogSubset(t *testing.T) {
	c := catalog.New(rand.New(rand.NewSource(1)))

	for _, label := range emotion.Labels {
		round := c.Suggest(label)

		if len(round) != catalog.SuggestionCount {
			t.Fatalf(
				"%s: expected %d suggestions, got %d",
				label,
				catalog.SuggestionCount,
				len(round),
			)
		}

		all := catalog.All(label)

		for _, act := range round {
			if !containsTitle(all, act.Title) {
				t.Fatalf(
					"%s: suggestion %q is not in the catalog",
					label,
					act.Title,
				)
			}
		}
	}
}

func TestSuggestReshufflesEachRound(t *testing.T) {
	c := catalog.New(rand.New(rand.NewSource(7)))

	first := c.Suggest(emotion.Sad)

	// A reshuffle must eventually produce a different round; with 11 sad
	// candidates, 50 identical rounds in a row would mean no shuffling.
	for i := 0; i < 50; i++ {
		next := c.Suggest(emotion.Sad)
		if !cmp.Equal(first, next) {
			return
		}
	}

	t.Fatal("expected a different round within 50 reshuffles")
}

func TestAllFallsBackToNeutral(t *testing.T) {
	got := catalog.All(emotion.Label("bewildered"))
	want := catalog.All(emotion.Neutral)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expected neutral fallback (-want +got):\n%s", diff)
	}
}

func TestAllAppliesDefaultDuration(t *testing.T) {
	for _, act := range catalog.All(emotion.Happy) {
		if act.DurationMinutes != catalog.DefaultDuration {
			t.Fatalf(
				"%q: expected default duration %d, got %d",
				act.Title,
				catalog.DefaultDuration,
				act.DurationMinutes,
			)
		}
	}
}

func TestSortedUsesNaturalOrder(t *testing.T) {
	sorted := catalog.Sorted(emotion.Angry)

	for i := 1; i < len(sorted); i++ {
		if natural.Less(sorted[i].Title, sorted[i-1].Title) {
			t.Fatalf(
				"titles out of order: %q before %q",
				sorted[i-1].Title,
				sorted[i].Title,
			)
		}
	}
}

func TestClampDuration(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{name: "below minimum", in: 0, want: catalog.MinDuration},
		{name: "negative", in: -5, want: catalog.MinDuration},
		{name: "at minimum", in: 2, want: 2},
		{name: "in range", in: 15, want: 15},
		{name: "at maximum", in: 30, want: 30},
		{name: "above maximum", in: 45, want: catalog.MaxDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.ClampDuration(tc.in); got != tc.want {
				t.Fatalf("ClampDuration(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func containsTitle(acts []catalog.Activity, title string) bool {
	for _, a := range acts {
		if a.Title == title {
			return true
		}
	}

	return false
}
