// Package emotion defines the emotion labels recognised by the classifier
// and the result of a classification round.
package emotion

import "strings"

// Label identifies a detected emotion.
type Label string

const (
	Happy     Label = "happy"
	Sad       Label = "sad"
	Angry     Label = "angry"
	Surprised Label = "surprised"
	Fear      Label = "fear"
	Disgust   Label = "disgust"
	Neutral   Label = "neutral"
)

// Labels lists every recognised label.
var Labels = []Label{
	Happy,
	Sad,
	Angry,
	Surprised,
	Fear,
	Disgust,
	Neutral,
}

// Normalize maps a classifier-provided label to its canonical form.
// The classification service reports 'surprise' while the catalog is keyed
// on 'surprised'.
func Normalize(s string) Label {
	l := Label(strings.ToLower(strings.TrimSpace(s)))

	if l == "surprise" {
		return Surprised
	}

	return l
}

// Known reports whether the label is one of the recognised emotions.
func (l Label) Known() bool {
	for _, v := range Labels {
		if v == l {
			return true
		}
	}

	return false
}

func (l Label) String() string {
	return string(l)
}

// Result is the outcome of one classification round. A new result supersedes
// any previous one and invalidates downstream selection and session state.
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	// HasConfidence is false when the classifier omitted a confidence score.
	HasConfidence bool `json:"has_confidence"`
}
