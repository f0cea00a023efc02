package adapter

import (
	"context"
	"errors"
	"testing"

	"speak-byte/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaderboardKey = "speakbyte:points:leaderboard:c1"

func TestRedisLeaderboardAdapter_SetScore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	leaderboard := NewRedisLeaderboardAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectZAdd(leaderboardKey, redis.Z{Score: 92, Member: "u1"}).SetVal(1)
		err := leaderboard.SetScore(ctx, "c1", "u1", 92)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectZAdd(leaderboardKey, redis.Z{Score: 92, Member: "u1"}).SetErr(redisErr)
		err := leaderboard.SetScore(ctx, "c1", "u1", 92)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisLeaderboardAdapter_Top(t *testing.T) {
	db, mock := redismock.NewClientMock()
	leaderboard := NewRedisLeaderboardAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectZRevRangeWithScores(leaderboardKey, 0, 2).SetVal([]redis.Z{
			{Score: 300, Member: "u2"},
			{Score: 120, Member: "u1"},
		})
		entries, err := leaderboard.Top(ctx, "c1", 3)
		require.NoError(t, err)
		assert.Equal(t, []domain.RankingEntry{
			{Rank: 1, UserID: "u2", TotalPoints: 300},
			{Rank: 2, UserID: "u1", TotalPoints: 120},
		}, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NonPositiveLimit", func(t *testing.T) {
		entries, err := leaderboard.Top(ctx, "c1", 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectZRevRangeWithScores(leaderboardKey, 0, 9).SetErr(redisErr)
		_, err := leaderboard.Top(ctx, "c1", 10)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisLeaderboardAdapter_RankOf(t *testing.T) {
	db, mock := redismock.NewClientMock()
	leaderboard := NewRedisLeaderboardAdapter(db)
	ctx := context.Background()

	t.Run("Ranked", func(t *testing.T) {
		mock.ExpectZRevRank(leaderboardKey, "u1").SetVal(1)
		rank, err := leaderboard.RankOf(ctx, "c1", "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, rank)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unranked", func(t *testing.T) {
		mock.ExpectZRevRank(leaderboardKey, "ghost").SetErr(redis.Nil)
		rank, err := leaderboard.RankOf(ctx, "c1", "ghost")
		require.NoError(t, err)
		assert.Zero(t, rank)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
