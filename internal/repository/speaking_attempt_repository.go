package repository

import (
	"context"
	"fmt"
	"time"

	"speak-byte/internal/domain"
	"speak-byte/internal/repository/models"
	"speak-byte/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxSpeakingAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXSpeakingAttemptRepository creates a speaking attempt repository backed by sqlx.
func NewSQLXSpeakingAttemptRepository(db *sqlx.DB) domain.SpeakingAttemptRepository {
	return &sqlxSpeakingAttemptRepository{db: db}
}

func fromDomainSpeakingAttempt(a *domain.SpeakingAttempt) *models.SpeakingAttempt {
	return &models.SpeakingAttempt{
		ID:          a.ID,
		UserID:      a.UserID,
		CourseID:    a.CourseID,
		SentenceNo:  a.SentenceNo,
		Transcript:  a.Transcript,
		IsCorrect:   util.BoolToNumber(a.IsCorrect),
		Tier:        string(a.Tier),
		AttemptedAt: a.AttemptedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// CreateAttempt inserts an attempt, filling in the id and timestamps when unset.
func (r *sqlxSpeakingAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.SpeakingAttempt) error {
	now := time.Now()
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = now
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = now
	}
	m := fromDomainSpeakingAttempt(attempt)

	query := `INSERT INTO speaking_attempts (id, user_id, course_id, sentence_no, transcript, is_correct, tier, attempted_at, created_at)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.UserID, m.CourseID, m.SentenceNo, m.Transcript, m.IsCorrect, m.Tier, m.AttemptedAt, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create speaking attempt: %w", err)
	}
	return nil
}
