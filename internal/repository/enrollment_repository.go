package repository

import (
	"context"
	"fmt"

	"speak-byte/internal/domain"
	"speak-byte/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxEnrollmentRepository struct {
	db *sqlx.DB
}

// NewSQLXEnrollmentRepository creates a roster source backed by sqlx.
func NewSQLXEnrollmentRepository(db *sqlx.DB) domain.EnrollmentRepository {
	return &sqlxEnrollmentRepository{db: db}
}

// ListActiveEnrollments returns the active roster of a course. Rows whose
// user no longer exists come back with an empty UserID.
func (r *sqlxEnrollmentRepository) ListActiveEnrollments(ctx context.Context, courseID string) ([]domain.Enrollment, error) {
	var rows []models.Enrollment
	query := `SELECT user_id, course_id, status FROM enrollments WHERE course_id = :1 AND status = :2 ORDER BY enrolled_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, courseID, domain.EnrollmentStatusActive); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	enrollments := make([]domain.Enrollment, 0, len(rows))
	for _, row := range rows {
		enrollments = append(enrollments, domain.Enrollment{
			UserID:   row.UserID.String,
			CourseID: row.CourseID,
			Status:   row.Status,
		})
	}
	return enrollments, nil
}
