// Package catalog holds the static mapping from emotions to candidate
// activities and produces shuffled suggestion triples.
package catalog

import (
	"math/rand"
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/moodlift/internal/emotion"
)

const (
	// MinDuration and MaxDuration bound the user-adjustable activity
	// duration in minutes.
	MinDuration = 2
	MaxDuration = 30

	DefaultDuration = 5

	// SuggestionCount is the number of candidates presented per round.
	SuggestionCount = 3
)

// Activity is a suggested activity. Catalog entries are immutable; a
// session-local copy carries the duration chosen by the user.
type Activity struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Catalog produces activity suggestions for an emotion.
type Catalog struct {
	rng *rand.Rand
}

// New creates a catalog whose shuffles are driven by rng. A nil rng is
// replaced with a time-seeded source.
func New(rng *rand.Rand) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Catalog{rng: rng}
}

// Suggest returns up to SuggestionCount activities for the label in a
// pseudo-random order. Unrecognised labels fall back to the neutral list.
// Each call reshuffles, so any downstream selection must be discarded.
func (c *Catalog) Suggest(label emotion.Label) []Activity {
	candidates := All(label)

	c.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > SuggestionCount {
		candidates = candidates[:SuggestionCount]
	}

	return candidates
}

// All returns a copy of the full candidate list for the label, falling back
// to the neutral list for unrecognised labels. Every copy carries the
// default duration.
func All(label emotion.Label) []Activity {
	src, ok := suggestions[label]
	if !ok {
		src = suggestions[emotion.Neutral]
	}

	out := make([]Activity, len(src))
	copy(out, src)

	for i := range out {
		if out[i].DurationMinutes == 0 {
			out[i].DurationMinutes = DefaultDuration
		}
	}

	return out
}

// Sorted returns the label's candidate list in natural title order for
// display purposes.
func Sorted(label emotion.Label) []Activity {
	out := All(label)

	sort.Slice(out, func(i, j int) bool {
		return natural.Less(out[i].Title, out[j].Title)
	})

	return out
}

// ClampDuration coerces a requested duration into the allowed bounds.
func ClampDuration(mins int) int {
	if mins < MinDuration {
		return MinDuration
	}

	if mins > MaxDuration {
		return MaxDuration
	}

	return mins
}
