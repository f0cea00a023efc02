package domain

import (
	"context"
	"time"
)

// TargetSentence is the canonical sentence a learner is asked to say.
type TargetSentence struct {
	No       int    `json:"no"`
	EN       string `json:"en"`
	KO       string `json:"ko"`
	AudioURL string `json:"audio_url,omitempty"`
}

// MatchTier names the comparison stage that produced a verdict.
type MatchTier string

const (
	TierExact    MatchTier = "exact"
	TierSemantic MatchTier = "semantic"
	TierToken    MatchTier = "token"
	TierDiff     MatchTier = "diff"
)

// WordMismatch is a same-position word pair that did not match.
type WordMismatch struct {
	Spoken  string `json:"spoken"`
	Correct string `json:"correct"`
}

// Differences is the word-level diff shown to the learner.
type Differences struct {
	Missing   []string       `json:"missing"`
	Incorrect []WordMismatch `json:"incorrect"`
}

// IsEmpty reports whether no missing or incorrect words were found.
func (d Differences) IsEmpty() bool {
	return len(d.Missing) == 0 && len(d.Incorrect) == 0
}

// ComparisonResult is the verdict for one transcript against one sentence.
type ComparisonResult struct {
	IsCorrect       bool        `json:"is_correct"`
	FeedbackMessage string      `json:"feedback_message"`
	Differences     Differences `json:"differences"`
	Tier            MatchTier   `json:"tier"`
}

// Roles holds the core grammatical role-fillers of a sentence.
type Roles struct {
	Subjects []string `json:"subjects"`
	Verbs    []string `json:"verbs"`
	Objects  []string `json:"objects"`
}

// RoleTagger extracts subject / verb / object fillers from normalized text.
type RoleTagger interface {
	TagRoles(ctx context.Context, text string) (Roles, error)
}

// SpeakingAttempt records one checked utterance for attempt bookkeeping.
type SpeakingAttempt struct {
	ID          string
	UserID      string
	CourseID    string
	SentenceNo  int
	Transcript  string
	IsCorrect   bool
	Tier        MatchTier
	AttemptedAt time.Time
	CreatedAt   time.Time
}

// SentenceRepository loads and stores target sentences.
type SentenceRepository interface {
	// GetSentenceByNo returns (nil, nil) when no sentence has that number.
	GetSentenceByNo(ctx context.Context, no int) (*TargetSentence, error)
	// SaveSentence inserts or replaces the sentence with the same number.
	SaveSentence(ctx context.Context, sentence *TargetSentence) error
}

// SpeakingAttemptRepository persists speaking attempts.
type SpeakingAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *SpeakingAttempt) error
}
