package speaking

// Lexicon is a set of word equivalence groups. A word may belong to more
// than one group ("right" sounds like "write" and means "correct").
type Lexicon struct {
	related map[string]map[string]struct{}
}

// NewLexicon builds a lexicon from groups of interchangeable words.
// Words are expected in normalized (lowercase) form.
func NewLexicon(groups ...[]string) *Lexicon {
	l := &Lexicon{related: make(map[string]map[string]struct{})}
	for _, group := range groups {
		for _, w := range group {
			set, ok := l.related[w]
			if !ok {
				set = make(map[string]struct{})
				l.related[w] = set
			}
			for _, other := range group {
				set[other] = struct{}{}
			}
		}
	}
	return l
}

// Related reports whether a and b are equal or share a group.
func (l *Lexicon) Related(a, b string) bool {
	if a == b {
		return true
	}
	if l == nil {
		return false
	}
	_, ok := l.related[a][b]
	return ok
}

// DefaultHomophones returns words commonly confused by speech recognition.
func DefaultHomophones() *Lexicon {
	return NewLexicon(
		[]string{"their", "there", "they're"},
		[]string{"to", "too", "two"},
		[]string{"your", "you're"},
		[]string{"its", "it's"},
		[]string{"whose", "who's"},
		[]string{"hear", "here"},
		[]string{"know", "no"},
		[]string{"knew", "new"},
		[]string{"right", "write", "rite"},
		[]string{"weather", "whether"},
		[]string{"buy", "by", "bye"},
		[]string{"for", "four", "fore"},
		[]string{"one", "won"},
		[]string{"eight", "ate"},
		[]string{"see", "sea"},
		[]string{"meet", "meat"},
		[]string{"week", "weak"},
		[]string{"where", "wear"},
		[]string{"would", "wood"},
		[]string{"hour", "our"},
		[]string{"sun", "son"},
		[]string{"flower", "flour"},
		[]string{"mail", "male"},
		[]string{"peace", "piece"},
		[]string{"plane", "plain"},
		[]string{"sale", "sail"},
		[]string{"tail", "tale"},
		[]string{"wait", "weight"},
		[]string{"blue", "blew"},
		[]string{"break", "brake"},
		[]string{"cell", "sell"},
		[]string{"dear", "deer"},
		[]string{"fair", "fare"},
		[]string{"hole", "whole"},
		[]string{"made", "maid"},
		[]string{"pair", "pear"},
		[]string{"road", "rode"},
		[]string{"steal", "steel"},
		[]string{"threw", "through"},
		[]string{"way", "weigh"},
		[]string{"be", "bee"},
		[]string{"i", "eye"},
		[]string{"in", "inn"},
		[]string{"not", "knot"},
		[]string{"so", "sew"},
		[]string{"some", "sum"},
		[]string{"than", "then"},
		[]string{"ok", "okay"},
	)
}

// DefaultSynonyms returns a small everyday-English synonym table.
func DefaultSynonyms() *Lexicon {
	return NewLexicon(
		[]string{"good", "great", "nice", "fine", "excellent"},
		[]string{"big", "large", "huge"},
		[]string{"small", "little", "tiny"},
		[]string{"happy", "glad"},
		[]string{"start", "begin"},
		[]string{"end", "finish"},
		[]string{"buy", "purchase"},
		[]string{"fast", "quick"},
		[]string{"hard", "difficult"},
		[]string{"easy", "simple"},
		[]string{"sick", "ill"},
		[]string{"movie", "film"},
		[]string{"shop", "store"},
		[]string{"rich", "wealthy"},
		[]string{"smart", "intelligent", "clever"},
		[]string{"angry", "mad"},
		[]string{"pretty", "beautiful"},
		[]string{"help", "assist"},
		[]string{"hi", "hello"},
		[]string{"yes", "yeah"},
		[]string{"kid", "child"},
		[]string{"kids", "children"},
		[]string{"mom", "mother"},
		[]string{"dad", "father"},
		[]string{"home", "house"},
		[]string{"correct", "right"},
		[]string{"near", "close"},
		[]string{"talk", "speak"},
		[]string{"look", "watch"},
		[]string{"car", "automobile"},
		[]string{"trip", "journey"},
		[]string{"street", "road"},
	)
}
