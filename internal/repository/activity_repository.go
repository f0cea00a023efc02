package repository

import (
	"context"
	"fmt"

	"speak-byte/internal/domain"

	"github.com/jmoiron/sqlx"
)

type sqlxActivityRepository struct {
	db *sqlx.DB
}

// NewSQLXActivityRepository creates an activity counter backed by sqlx.
func NewSQLXActivityRepository(db *sqlx.DB) domain.ActivityRepository {
	return &sqlxActivityRepository{db: db}
}

// go-ora binds positionally, so every subquery takes its own user/course pair.
const countActivitiesQuery = `SELECT
  (SELECT NVL(SUM(watched_seconds), 0) FROM video_views WHERE user_id = :1 AND course_id = :2) AS video_seconds,
  (SELECT COUNT(*) FROM audio_attempts WHERE user_id = :3 AND course_id = :4) AS audio_attempts,
  (SELECT COUNT(*) FROM recording_attempts WHERE user_id = :5 AND course_id = :6) AS recording_attempts,
  (SELECT COUNT(*) FROM speaking_attempts WHERE user_id = :7 AND course_id = :8) AS quiz_attempts,
  (SELECT NVL(SUM(is_correct), 0) FROM speaking_attempts WHERE user_id = :9 AND course_id = :10) AS quiz_correct,
  (SELECT COUNT(DISTINCT attended_on) FROM attendances WHERE user_id = :11 AND course_id = :12) AS attendance_days,
  (SELECT COUNT(*) FROM voice_recordings WHERE user_id = :13 AND course_id = :14 AND is_public = 1) AS voice_open_count,
  (SELECT COUNT(*) FROM voice_likes l JOIN voice_recordings r ON r.id = l.recording_id
    WHERE r.user_id = :15 AND r.course_id = :16) AS voice_likes_received,
  (SELECT COUNT(*) FROM voice_likes l JOIN voice_recordings r ON r.id = l.recording_id
    WHERE l.user_id = :17 AND r.course_id = :18) AS voice_likes_given
FROM dual`

// CountActivities returns all raw activity totals of a user within a course
// in a single round trip.
func (r *sqlxActivityRepository) CountActivities(ctx context.Context, userID, courseID string) (domain.ActivityCounts, error) {
	args := make([]interface{}, 0, 18)
	for i := 0; i < 9; i++ {
		args = append(args, userID, courseID)
	}

	var counts domain.ActivityCounts
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &counts, countActivitiesQuery, args...); err != nil {
		return domain.ActivityCounts{}, fmt.Errorf("failed to count activities: %w", err)
	}
	return counts, nil
}
