package service

import (
	"context"
	"errors"
	"time"

	"speak-byte/internal/domain"
	"speak-byte/internal/dto"
	"speak-byte/internal/logger"
	"speak-byte/internal/metrics"
	"speak-byte/internal/points"

	"go.uber.org/zap"
)

// PointsService exposes course point totals and rankings.
type PointsService interface {
	GetUserPoints(ctx context.Context, userID, courseID string) (*dto.PointsResponse, error)
	// SyncUserPoints recomputes and persists a user's total, then refreshes the leaderboard.
	SyncUserPoints(ctx context.Context, userID, courseID string) (*dto.SyncPointsResponse, error)
	GetTeamPoints(ctx context.Context, courseID string) (*dto.TeamPointsResponse, error)
	GetRanking(ctx context.Context, courseID string, limit int) (*dto.RankingResponse, error)
}

type pointsService struct {
	aggregator  *points.Aggregator
	store       domain.CoursePointsRepository
	leaderboard domain.Leaderboard
	tx          domain.TransactionManager
}

// NewPointsService creates a new points service. leaderboard may be nil, in
// which case rankings are always served from the database.
func NewPointsService(
	aggregator *points.Aggregator,
	store domain.CoursePointsRepository,
	leaderboard domain.Leaderboard,
	tx domain.TransactionManager,
) PointsService {
	return &pointsService{
		aggregator:  aggregator,
		store:       store,
		leaderboard: leaderboard,
		tx:          tx,
	}
}

func (s *pointsService) GetUserPoints(ctx context.Context, userID, courseID string) (*dto.PointsResponse, error) {
	breakdown, err := s.aggregator.UserPoints(ctx, userID, courseID)
	if err != nil {
		return nil, asDomainError("Failed to compute user points", err)
	}
	metrics.ObservePointsComputation("user")

	return &dto.PointsResponse{
		UserID:      userID,
		CourseID:    courseID,
		TotalPoints: breakdown.TotalPoints,
		Lines:       breakdown.Lines,
	}, nil
}

func (s *pointsService) SyncUserPoints(ctx context.Context, userID, courseID string) (*dto.SyncPointsResponse, error) {
	var total int64
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		breakdown, err := s.aggregator.UserPoints(txCtx, userID, courseID)
		if err != nil {
			return err
		}
		total = breakdown.TotalPoints
		return s.store.UpsertCoursePoints(txCtx, &domain.CoursePoints{
			UserID:      userID,
			CourseID:    courseID,
			TotalPoints: total,
			UpdatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, asDomainError("Failed to sync user points", err)
	}
	metrics.ObservePointsComputation("user")

	resp := &dto.SyncPointsResponse{CourseID: courseID, TotalPoints: total}
	if s.leaderboard == nil {
		return resp, nil
	}

	// the database row is authoritative; leaderboard failures only cost the rank
	if err := s.leaderboard.SetScore(ctx, courseID, userID, total); err != nil {
		logger.Get().Warn("Failed to update leaderboard",
			zap.String("userID", userID),
			zap.String("courseID", courseID),
			zap.Error(err))
		return resp, nil
	}
	rank, err := s.leaderboard.RankOf(ctx, courseID, userID)
	if err != nil {
		logger.Get().Warn("Failed to read leaderboard rank",
			zap.String("userID", userID),
			zap.String("courseID", courseID),
			zap.Error(err))
		return resp, nil
	}
	resp.Rank = rank
	return resp, nil
}

func (s *pointsService) GetTeamPoints(ctx context.Context, courseID string) (*dto.TeamPointsResponse, error) {
	team, err := s.aggregator.TeamPoints(ctx, courseID)
	if err != nil {
		return nil, asDomainError("Failed to compute team points", err)
	}
	metrics.ObservePointsComputation("team")

	return &dto.TeamPointsResponse{
		CourseID:        courseID,
		TotalTeamPoints: team.TotalTeamPoints,
		StudentCount:    team.StudentCount,
	}, nil
}

func (s *pointsService) GetRanking(ctx context.Context, courseID string, limit int) (*dto.RankingResponse, error) {
	if courseID == "" {
		return nil, domain.NewInvalidArgumentError("courseId is required")
	}
	if limit <= 0 {
		return nil, domain.NewInvalidArgumentError("limit must be positive")
	}

	if s.leaderboard != nil {
		entries, err := s.leaderboard.Top(ctx, courseID, limit)
		if err != nil {
			logger.Get().Warn("Leaderboard read failed, falling back to database",
				zap.String("courseID", courseID),
				zap.Error(err))
		} else if len(entries) > 0 {
			return &dto.RankingResponse{CourseID: courseID, Entries: entries, Source: "cache"}, nil
		}
	}

	entries, err := s.store.ListRanking(ctx, courseID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list ranking", err)
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	return &dto.RankingResponse{CourseID: courseID, Entries: entries, Source: "database"}, nil
}

// asDomainError keeps domain errors intact and wraps everything else as internal.
func asDomainError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}
