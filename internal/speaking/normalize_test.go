package speaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"case and punctuation", "Where is the check-in counter for Korean Air?", "where is the check in counter for korean air"},
		{"whitespace runs", "  Hello,   World!!  ", "hello world"},
		{"would contraction", "I'd like a coffee.", "i would like a coffee"},
		{"negation", "I don't know", "i do not know"},
		{"curly apostrophe", "I don’t know", "i do not know"},
		{"won't", "I won't go", "i will not go"},
		{"can't", "You can't stop", "you cannot stop"},
		{"am have will", "I'm sure we've met and they'll come", "i am sure we have met and they will come"},
		{"homophone contraction kept", "They’re going", "they're going"},
		{"quoting apostrophes", "She said 'hello'", "she said hello"},
		{"double quotes are kept", `She said "hello"`, `she said "hello"`},
		{"brackets are kept", "I [really] mean it", "i [really] mean it"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	sentences := []string{
		"Where is the check-in counter for Korean Air?",
		"I'd like to order a large pizza, please!",
		"They're going to the store; it's late.",
		"Can't you see (the) #1 sign? {yes} = `no` ~ maybe_not",
		"I won't've done that",
		"'quoted' words and trailing apostrophes'",
		"   spaced    out   ",
	}

	for _, s := range sentences {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"i", "eat", "an", "apple"}, Words("I eat an apple."))
	assert.Empty(t, Words("  "))
}
