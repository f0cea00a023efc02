package speaking

import (
	"regexp"
	"strings"
)

var apostropheReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"´", "'", // acute accent
	"′", "'", // prime
	"＇", "'", // fullwidth apostrophe
)

// Contractions that pair with a homophone (they're/their, you're/your,
// it's/its, who's/whose) are left alone so the homophone table can see them.
var contractionRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bwon't\b`), "will not"},
	{regexp.MustCompile(`\bcan't\b`), "cannot"},
	{regexp.MustCompile(`\bshan't\b`), "shall not"},
	{regexp.MustCompile(`n't\b`), " not"},
	{regexp.MustCompile(`'m\b`), " am"},
	{regexp.MustCompile(`'ve\b`), " have"},
	{regexp.MustCompile(`'ll\b`), " will"},
	{regexp.MustCompile(`'d\b`), " would"},
}

const strippedPunctuation = ".,/#!?$%^&*;:{}=-_`~()"

// Normalize lowercases s, unifies apostrophes, expands contractions, turns
// punctuation into spaces and collapses whitespace. It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = apostropheReplacer.Replace(s)
	for _, rule := range contractionRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return ' '
		}
		return r
	}, s)

	fields := strings.Fields(s)
	words := fields[:0]
	for _, f := range fields {
		// quoting apostrophes ('hello') are not part of the word
		if w := strings.Trim(f, "'"); w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// Words returns the normalized word list of s.
func Words(s string) []string {
	return strings.Fields(Normalize(s))
}
