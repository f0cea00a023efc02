package dto

import "speak-byte/internal/domain"

// CompareRequest compares an ad-hoc transcript with a reference sentence
// @Description Request body for a stateless comparison
type CompareRequest struct {
	Transcript string `json:"transcript" validate:"max=2000"`
	Target     string `json:"target" validate:"notblank,max=1000"`
}

// CheckSpeakingRequest checks a transcript against a stored sentence
// @Description Request body for checking a spoken sentence
type CheckSpeakingRequest struct {
	SentenceNo int    `json:"sentence_no" validate:"required,gte=1"`
	CourseID   string `json:"course_id" validate:"notblank,max=64"`
	Transcript string `json:"transcript" validate:"max=2000"`
}

// SentenceAnswer is the canonical answer revealed after a correct attempt
type SentenceAnswer struct {
	EN       string `json:"en"`
	KO       string `json:"ko,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
}

// SpeakingResultResponse represents the verdict in the API response
type SpeakingResultResponse struct {
	IsCorrect       bool               `json:"is_correct"`
	FeedbackMessage string             `json:"feedback_message"`
	Differences     domain.Differences `json:"differences"`
	Tier            domain.MatchTier   `json:"tier"`
	ShowAnswer      bool               `json:"show_answer"`
	Answer          *SentenceAnswer    `json:"answer,omitempty"`
	AttemptID       string             `json:"attempt_id,omitempty"`
}

// NewSpeakingResultResponse maps a comparison result without answer data.
func NewSpeakingResultResponse(result domain.ComparisonResult) *SpeakingResultResponse {
	return &SpeakingResultResponse{
		IsCorrect:       result.IsCorrect,
		FeedbackMessage: result.FeedbackMessage,
		Differences:     result.Differences,
		Tier:            result.Tier,
	}
}
