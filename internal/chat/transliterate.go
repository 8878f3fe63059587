package chat

import (
	"strings"
	"unicode"
)

// hinglishTable is a best-effort phrase lookup for rewriting common Hindi
// phrases in Latin script before they reach the input field. Unmapped text
// passes through unchanged.
type hinglishTable struct {
	phrases map[string]string
}

// HinglishTable returns the default Devanagari transliteration table.
func HinglishTable() Transliterator {
	return &hinglishTable{
		phrases: map[string]string{
			"नमस्ते":                "namaste",
			"कैसे हो":               "kaise ho",
			"मैं ठीक हूँ":           "mein thik hu",
			"आप कैसे हैं":           "aap kaise hain",
			"मुझे अच्छा लग रहा है":  "mujhe accha lag raha hai",
			"धन्यवाद":               "dhanyavad",
			"हैलो":                  "hello",
		},
	}
}

// Convert replaces known phrases first, then falls back to per-word
// replacement for anything left over.
func (h *hinglishTable) Convert(text string) string {
	for phrase, latin := range h.phrases {
		text = strings.ReplaceAll(text, phrase, latin)
	}

	words := strings.Split(text, " ")
	for i, w := range words {
		if latin, ok := h.phrases[w]; ok {
			words[i] = latin
		}
	}

	return strings.Join(words, " ")
}

// containsDevanagari reports whether any rune in s belongs to the
// Devanagari script.
func containsDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}

	return false
}
