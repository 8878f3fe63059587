package chat

import "testing"

func TestHinglishConvert(t *testing.T) {
	table := HinglishTable()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "known phrase",
			in:   "कैसे हो",
			want: "kaise ho",
		},
		{
			name: "phrase inside a sentence",
			in:   "hello मैं ठीक हूँ bye",
			want: "hello mein thik hu bye",
		},
		{
			name: "single word",
			in:   "धन्यवाद",
			want: "dhanyavad",
		},
		{
			name: "unmapped text passes through",
			in:   "totally unmapped",
			want: "totally unmapped",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := table.Convert(tc.in); got != tc.want {
				t.Fatalf("Convert(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestContainsDevanagari(t *testing.T) {
	if !containsDevanagari("नमस्ते friend") {
		t.Fatal("expected Devanagari to be detected")
	}

	if containsDevanagari("plain latin") {
		t.Fatal("expected no Devanagari in latin text")
	}
}
