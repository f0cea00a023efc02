package repository

import (
	"context"
	"fmt"
	"time"

	"speak-byte/internal/domain"
	"speak-byte/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxCoursePointsRepository struct {
	db *sqlx.DB
}

// NewSQLXCoursePointsRepository creates a point total store backed by sqlx.
func NewSQLXCoursePointsRepository(db *sqlx.DB) domain.CoursePointsRepository {
	return &sqlxCoursePointsRepository{db: db}
}

// UpsertCoursePoints stores the latest total of a user in a course.
func (r *sqlxCoursePointsRepository) UpsertCoursePoints(ctx context.Context, points *domain.CoursePoints) error {
	if points.UpdatedAt.IsZero() {
		points.UpdatedAt = time.Now()
	}

	query := `MERGE INTO course_points cp
	          USING (SELECT :1 AS user_id, :2 AS course_id, :3 AS total_points, :4 AS updated_at FROM dual) src
	          ON (cp.user_id = src.user_id AND cp.course_id = src.course_id)
	          WHEN MATCHED THEN UPDATE SET cp.total_points = src.total_points, cp.updated_at = src.updated_at
	          WHEN NOT MATCHED THEN INSERT (user_id, course_id, total_points, updated_at)
	          VALUES (src.user_id, src.course_id, src.total_points, src.updated_at)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		points.UserID, points.CourseID, points.TotalPoints, points.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert course points: %w", err)
	}
	return nil
}

// ListRanking returns the stored totals of a course, best first. Ties are
// broken by who reached the total earlier.
func (r *sqlxCoursePointsRepository) ListRanking(ctx context.Context, courseID string, limit int) ([]domain.RankingEntry, error) {
	var rows []models.CoursePoints
	query := `SELECT user_id, course_id, total_points, updated_at FROM course_points
	          WHERE course_id = :1
	          ORDER BY total_points DESC, updated_at ASC
	          FETCH FIRST :2 ROWS ONLY`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, courseID, limit); err != nil {
		return nil, fmt.Errorf("failed to list ranking: %w", err)
	}

	entries := make([]domain.RankingEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, domain.RankingEntry{
			Rank:        i + 1,
			UserID:      row.UserID,
			TotalPoints: row.TotalPoints,
		})
	}
	return entries, nil
}
