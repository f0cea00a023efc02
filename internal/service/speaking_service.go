package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"speak-byte/internal/cache"
	"speak-byte/internal/config"
	"speak-byte/internal/domain"
	"speak-byte/internal/dto"
	"speak-byte/internal/logger"
	"speak-byte/internal/metrics"
	"speak-byte/internal/speaking"
	"speak-byte/internal/util"

	"go.uber.org/zap"
)

const defaultSentenceTTL = 24 * time.Hour

// SpeakingService checks spoken transcripts against target sentences.
type SpeakingService interface {
	// Compare judges a transcript against an ad-hoc reference sentence.
	Compare(ctx context.Context, req *dto.CompareRequest) (*dto.SpeakingResultResponse, error)
	// CheckSpeaking judges a transcript against a stored sentence and records the attempt.
	CheckSpeaking(ctx context.Context, userID string, req *dto.CheckSpeakingRequest) (*dto.SpeakingResultResponse, error)
}

type speakingService struct {
	matcher   *speaking.Matcher
	sentences domain.SentenceRepository
	attempts  domain.SpeakingAttemptRepository
	cache     domain.Cache
	cfg       *config.Config
}

// NewSpeakingService creates a new speaking service. cache may be nil.
func NewSpeakingService(
	matcher *speaking.Matcher,
	sentences domain.SentenceRepository,
	attempts domain.SpeakingAttemptRepository,
	cache domain.Cache,
	cfg *config.Config,
) SpeakingService {
	return &speakingService{
		matcher:   matcher,
		sentences: sentences,
		attempts:  attempts,
		cache:     cache,
		cfg:       cfg,
	}
}

func (s *speakingService) Compare(ctx context.Context, req *dto.CompareRequest) (*dto.SpeakingResultResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidArgumentError("request is required")
	}

	show := false
	result := s.matcher.Compare(ctx, req.Transcript, domain.TargetSentence{EN: req.Target}, speaking.Hooks{
		OnShowAnswer: func(v bool) { show = v },
	})
	metrics.ObserveSpeakingCheck(string(result.Tier), result.IsCorrect)

	resp := dto.NewSpeakingResultResponse(result)
	if show {
		resp.ShowAnswer = true
		resp.Answer = &dto.SentenceAnswer{EN: req.Target}
	}
	return resp, nil
}

func (s *speakingService) CheckSpeaking(ctx context.Context, userID string, req *dto.CheckSpeakingRequest) (*dto.SpeakingResultResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("user id is required")
	}
	if req == nil || req.SentenceNo <= 0 {
		return nil, domain.NewInvalidArgumentError("sentence_no must be positive")
	}
	if req.CourseID == "" {
		return nil, domain.NewInvalidArgumentError("course_id is required")
	}

	sentence, err := s.getSentence(ctx, req.SentenceNo)
	if err != nil {
		return nil, err
	}

	var verdict, show bool
	result := s.matcher.Compare(ctx, req.Transcript, *sentence, speaking.Hooks{
		OnResult:     func(ok bool) { verdict = ok },
		OnShowAnswer: func(v bool) { show = v },
	})
	metrics.ObserveSpeakingCheck(string(result.Tier), result.IsCorrect)

	now := time.Now()
	attempt := &domain.SpeakingAttempt{
		ID:          util.NewULID(),
		UserID:      userID,
		CourseID:    req.CourseID,
		SentenceNo:  sentence.No,
		Transcript:  req.Transcript,
		IsCorrect:   verdict,
		Tier:        result.Tier,
		AttemptedAt: now,
		CreatedAt:   now,
	}
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		logger.Get().Error("Failed to record speaking attempt",
			zap.String("userID", userID),
			zap.Int("sentenceNo", sentence.No),
			zap.Error(err))
		return nil, domain.NewInternalError("Failed to record speaking attempt", err)
	}

	resp := dto.NewSpeakingResultResponse(result)
	resp.AttemptID = attempt.ID
	if show {
		resp.ShowAnswer = true
		resp.Answer = &dto.SentenceAnswer{
			EN:       sentence.EN,
			KO:       sentence.KO,
			AudioURL: sentence.AudioURL,
		}
	}
	return resp, nil
}

// getSentence reads through the cache. Cache failures never fail the request.
func (s *speakingService) getSentence(ctx context.Context, no int) (*domain.TargetSentence, error) {
	key := cache.SentenceKey(no)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var sentence domain.TargetSentence
			jsonErr := json.Unmarshal([]byte(cached), &sentence)
			if jsonErr == nil {
				return &sentence, nil
			}
			logger.Get().Warn("Failed to unmarshal cached sentence, deleting key",
				zap.String("key", key),
				zap.Error(jsonErr))
			_ = s.cache.Delete(ctx, key)
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Warn("Sentence cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	sentence, err := s.sentences.GetSentenceByNo(ctx, no)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get sentence", err)
	}
	if sentence == nil {
		return nil, domain.NewSentenceNotFoundError(no)
	}

	if s.cache != nil {
		if data, err := json.Marshal(sentence); err == nil {
			ttl := defaultSentenceTTL
			if s.cfg != nil {
				ttl = s.cfg.ParseTTLStringOrDefault(s.cfg.CacheTTLs.Sentence, defaultSentenceTTL)
			}
			if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
				logger.Get().Warn("Failed to cache sentence", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return sentence, nil
}
