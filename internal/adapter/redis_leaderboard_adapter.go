package adapter

import (
	"context"
	"errors"
	"fmt"

	"speak-byte/internal/cache"
	"speak-byte/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisLeaderboardAdapter keeps course rankings in Redis sorted sets,
// one set per course scored by total points.
type RedisLeaderboardAdapter struct {
	client redis.Cmdable
}

// NewRedisLeaderboardAdapter creates a leaderboard backed by client.
func NewRedisLeaderboardAdapter(client redis.Cmdable) domain.Leaderboard {
	return &RedisLeaderboardAdapter{client: client}
}

// SetScore replaces the user's score in the course ranking.
func (r *RedisLeaderboardAdapter) SetScore(ctx context.Context, courseID, userID string, points int64) error {
	err := r.client.ZAdd(ctx, cache.LeaderboardKey(courseID), redis.Z{
		Score:  float64(points),
		Member: userID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to set leaderboard score: %w", err)
	}
	return nil
}

// Top returns the highest scored users, best first. Ranks start at 1.
func (r *RedisLeaderboardAdapter) Top(ctx context.Context, courseID string, limit int) ([]domain.RankingEntry, error) {
	if limit <= 0 {
		return []domain.RankingEntry{}, nil
	}

	members, err := r.client.ZRevRangeWithScores(ctx, cache.LeaderboardKey(courseID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]domain.RankingEntry, 0, len(members))
	for i, m := range members {
		userID, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.RankingEntry{
			Rank:        i + 1,
			UserID:      userID,
			TotalPoints: int64(m.Score),
		})
	}
	return entries, nil
}

// RankOf returns the 1-based rank of userID, or 0 when the user is unranked.
func (r *RedisLeaderboardAdapter) RankOf(ctx context.Context, courseID, userID string) (int, error) {
	rank, err := r.client.ZRevRank(ctx, cache.LeaderboardKey(courseID), userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read leaderboard rank: %w", err)
	}
	return int(rank) + 1, nil
}
