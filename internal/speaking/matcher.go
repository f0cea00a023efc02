package speaking

import (
	"context"
	"strings"

	"speak-byte/internal/domain"
	"speak-byte/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultSemanticThreshold = 0.8
	DefaultTokenThreshold    = 0.9
)

// SuccessMarker prefixes every feedback message of a correct verdict.
const SuccessMarker = "Correct!"

const (
	msgExact    = SuccessMarker + " Perfect pronunciation."
	msgSemantic = SuccessMarker + " Your answer is contextually equivalent."
	msgToken    = SuccessMarker + " Most words matched."
	msgDiff     = SuccessMarker + " Minor differences were tolerated."
	msgRetry    = "Try again. Check the highlighted words."
)

// Hooks are notified once per comparison. Either field may be nil.
type Hooks struct {
	// OnResult receives the verdict.
	OnResult func(isCorrect bool)
	// OnShowAnswer receives whether the reference answer should be revealed.
	OnShowAnswer func(show bool)
}

func (h Hooks) fire(isCorrect bool) {
	if h.OnResult != nil {
		h.OnResult(isCorrect)
	}
	if h.OnShowAnswer != nil {
		h.OnShowAnswer(isCorrect)
	}
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThresholds overrides the semantic and token tier thresholds. A value
// outside (0, 1] leaves that threshold at its default.
func WithThresholds(semantic, token float64) Option {
	return func(m *Matcher) {
		if validThreshold(semantic) {
			m.semanticThreshold = semantic
		}
		if validThreshold(token) {
			m.tokenThreshold = token
		}
	}
}

func validThreshold(v float64) bool {
	return v > 0 && v <= 1
}

// WithLexicons replaces the homophone and synonym tables.
func WithLexicons(homophones, synonyms *Lexicon) Option {
	return func(m *Matcher) {
		m.homophones = homophones
		m.synonyms = synonyms
	}
}

// Matcher judges a spoken transcript against a target sentence through a
// cascade of increasingly tolerant tiers. It is safe for concurrent use.
type Matcher struct {
	tagger            domain.RoleTagger
	homophones        *Lexicon
	synonyms          *Lexicon
	semanticThreshold float64
	tokenThreshold    float64
}

// NewMatcher creates a Matcher. A nil tagger disables the semantic tier.
func NewMatcher(tagger domain.RoleTagger, opts ...Option) *Matcher {
	m := &Matcher{
		tagger:            tagger,
		homophones:        DefaultHomophones(),
		synonyms:          DefaultSynonyms(),
		semanticThreshold: DefaultSemanticThreshold,
		tokenThreshold:    DefaultTokenThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Compare evaluates transcript against target and fires hooks exactly once.
func (m *Matcher) Compare(ctx context.Context, transcript string, target domain.TargetSentence, hooks Hooks) domain.ComparisonResult {
	result := m.evaluate(ctx, transcript, target.EN)
	hooks.fire(result.IsCorrect)
	return result
}

func (m *Matcher) evaluate(ctx context.Context, transcript, target string) domain.ComparisonResult {
	spoken := Normalize(transcript)
	answer := Normalize(target)

	if spoken == answer {
		return correct(domain.TierExact, msgExact, emptyDifferences())
	}

	spokenWords := strings.Fields(spoken)
	answerWords := strings.Fields(answer)
	// a strict prefix of the answer never passes the tolerant tiers
	longEnough := len(spokenWords) >= len(answerWords)
	diff := m.diff(spokenWords, answerWords)

	if longEnough && m.tagger != nil {
		if score := m.semanticScore(ctx, spoken, answer); score >= m.semanticThreshold {
			return correct(domain.TierSemantic, msgSemantic, diff)
		}
	}

	if longEnough && m.tokenRatio(spokenWords, answerWords) >= m.tokenThreshold {
		return correct(domain.TierToken, msgToken, diff)
	}

	if diff.IsEmpty() {
		return correct(domain.TierDiff, msgDiff, diff)
	}
	return domain.ComparisonResult{
		IsCorrect:       false,
		FeedbackMessage: msgRetry,
		Differences:     diff,
		Tier:            domain.TierDiff,
	}
}

// semanticScore is the fraction of the three grammatical roles that agree.
func (m *Matcher) semanticScore(ctx context.Context, spoken, answer string) float64 {
	spokenRoles := m.tagRoles(ctx, spoken)
	answerRoles := m.tagRoles(ctx, answer)

	matched := 0
	if m.rolesMatch(spokenRoles.Subjects, answerRoles.Subjects) {
		matched++
	}
	if m.rolesMatch(spokenRoles.Verbs, answerRoles.Verbs) {
		matched++
	}
	if m.rolesMatch(spokenRoles.Objects, answerRoles.Objects) {
		matched++
	}
	return float64(matched) / 3
}

func (m *Matcher) tagRoles(ctx context.Context, text string) domain.Roles {
	roles, err := m.tagger.TagRoles(ctx, text)
	if err != nil {
		logger.Get().Warn("Role tagging failed, semantic tier degraded",
			zap.String("text", text),
			zap.Error(err))
		return domain.Roles{}
	}
	return roles
}

// rolesMatch requires two non-empty lists of equal length whose words are
// pairwise equal, homophones or synonyms.
func (m *Matcher) rolesMatch(spoken, answer []string) bool {
	if len(spoken) == 0 || len(answer) == 0 || len(spoken) != len(answer) {
		return false
	}
	for i := range spoken {
		a, b := strings.ToLower(spoken[i]), strings.ToLower(answer[i])
		if !m.homophones.Related(a, b) && !m.synonyms.Related(a, b) {
			return false
		}
	}
	return true
}

func (m *Matcher) tokenRatio(spoken, answer []string) float64 {
	longest := len(spoken)
	if len(answer) > longest {
		longest = len(answer)
	}
	if longest == 0 {
		return 1
	}
	shortest := len(spoken)
	if len(answer) < shortest {
		shortest = len(answer)
	}

	matched := 0
	for i := 0; i < shortest; i++ {
		if m.homophones.Related(spoken[i], answer[i]) {
			matched++
		}
	}
	return float64(matched) / float64(longest)
}

// diff lists answer words the speaker never reached and same-position words
// that are not homophones. Extra spoken words are ignored.
func (m *Matcher) diff(spoken, answer []string) domain.Differences {
	d := emptyDifferences()
	for i, word := range answer {
		if i >= len(spoken) {
			d.Missing = append(d.Missing, word)
			continue
		}
		if !m.homophones.Related(spoken[i], word) {
			d.Incorrect = append(d.Incorrect, domain.WordMismatch{Spoken: spoken[i], Correct: word})
		}
	}
	return d
}

func emptyDifferences() domain.Differences {
	return domain.Differences{Missing: []string{}, Incorrect: []domain.WordMismatch{}}
}

func correct(tier domain.MatchTier, msg string, diff domain.Differences) domain.ComparisonResult {
	return domain.ComparisonResult{
		IsCorrect:       true,
		FeedbackMessage: msg,
		Differences:     diff,
		Tier:            tier,
	}
}
