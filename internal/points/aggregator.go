package points

import (
	"context"
	"fmt"
	"sync/atomic"

	"speak-byte/internal/domain"
	"speak-byte/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultTeamConcurrency = 8

// Aggregator computes per-user and per-team course points from activity
// counts it fetches through its collaborators.
type Aggregator struct {
	activities  domain.ActivityRepository
	roster      domain.EnrollmentRepository
	concurrency int
}

// NewAggregator creates an Aggregator. concurrency bounds the number of
// per-user fetches in flight during TeamPoints.
func NewAggregator(activities domain.ActivityRepository, roster domain.EnrollmentRepository, concurrency int) *Aggregator {
	if concurrency <= 0 {
		concurrency = defaultTeamConcurrency
	}
	return &Aggregator{
		activities:  activities,
		roster:      roster,
		concurrency: concurrency,
	}
}

// UserPoints returns the weighted breakdown of one user's course activity.
func (a *Aggregator) UserPoints(ctx context.Context, userID, courseID string) (domain.PointBreakdown, error) {
	if courseID == "" {
		return domain.PointBreakdown{}, domain.NewInvalidArgumentError("courseId is required")
	}
	if userID == "" {
		return domain.PointBreakdown{}, domain.NewInvalidArgumentError("userId is required")
	}

	counts, err := a.activities.CountActivities(ctx, userID, courseID)
	if err != nil {
		return domain.PointBreakdown{}, fmt.Errorf("failed to count activities for user %s: %w", userID, err)
	}
	return Calculate(counts), nil
}

// TeamPoints sums the points of every active enrollee of a course. Each
// user counts once however many enrollments they hold. Enrollments without
// a user id are skipped.
func (a *Aggregator) TeamPoints(ctx context.Context, courseID string) (domain.TeamPointsResult, error) {
	if courseID == "" {
		return domain.TeamPointsResult{}, domain.NewInvalidArgumentError("courseId is required")
	}

	enrollments, err := a.roster.ListActiveEnrollments(ctx, courseID)
	if err != nil {
		return domain.TeamPointsResult{}, fmt.Errorf("failed to list enrollments for course %s: %w", courseID, err)
	}

	seen := make(map[string]struct{}, len(enrollments))
	userIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.UserID == "" {
			continue
		}
		if _, dup := seen[e.UserID]; dup {
			continue
		}
		seen[e.UserID] = struct{}{}
		userIDs = append(userIDs, e.UserID)
	}
	if len(userIDs) == 0 {
		return domain.TeamPointsResult{}, nil
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			breakdown, err := a.UserPoints(gctx, userID, courseID)
			if err != nil {
				return err
			}
			total.Add(breakdown.TotalPoints)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Get().Error("Team points aggregation failed",
			zap.String("course_id", courseID),
			zap.Error(err))
		return domain.TeamPointsResult{}, err
	}

	return domain.TeamPointsResult{
		TotalTeamPoints: total.Load(),
		StudentCount:    len(userIDs),
	}, nil
}
