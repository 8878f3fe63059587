package chat

import "github.com/ayoisaiah/moodlift/internal/emotion"

// Fact is a small piece of trivia about a mood, shown beneath the chat log.
type Fact struct {
	Fact   string `json:"fact"`
	Source string `json:"source,omitempty"`
}

var moodFacts = map[emotion.Label][]Fact{
	emotion.Happy: {
		{
			Fact:   "Smiling can boost your immune system and reduce stress hormones.",
			Source: "Psychology Today",
		},
		{
			Fact:   "Happy people tend to have stronger social connections and relationships.",
			Source: "Harvard Health",
		},
	},
	emotion.Sad: {
		{
			Fact:   "Sadness can actually improve memory and judgment in certain situations.",
			Source: "Psychological Science",
		},
		{
			Fact:   "Expressing sadness through art or writing can have therapeutic benefits.",
			Source: "Journal of Psychology",
		},
	},
	emotion.Angry: {
		{
			Fact:   "The body's fight-or-flight response during anger can last up to 30 minutes.",
			Source: "American Psychological Association",
		},
		{
			Fact:   "Controlled anger can sometimes motivate positive social change.",
			Source: "Social Psychology Quarterly",
		},
	},
	emotion.Neutral: {
		{
			Fact:   "A neutral emotional state can enhance logical decision-making.",
			Source: "Cognitive Science Journal",
		},
		{
			Fact:   "Emotional neutrality is valued differently across cultures.",
			Source: "Cultural Psychology Review",
		},
	},
}

// Facts returns trivia for the label, falling back to the neutral facts
// when none exist for it.
func Facts(label emotion.Label) []Fact {
	if facts, ok := moodFacts[label]; ok {
		return facts
	}

	return moodFacts[emotion.Neutral]
}
