package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"speak-byte/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return sqlxDB, mock
}

func TestSQLXSentenceRepository_GetSentenceByNo(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT sentence_no, en, ko, audio_url, created_at FROM sentences WHERE sentence_no = :1")

	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXSentenceRepository(db)

		rows := sqlmock.NewRows([]string{"SENTENCE_NO", "EN", "KO", "AUDIO_URL", "CREATED_AT"}).
			AddRow(3, "Where is the check-in counter?", "체크인 카운터가 어디인가요?", nil, time.Now())
		mock.ExpectQuery(query).WithArgs(3).WillReturnRows(rows)

		sentence, err := repo.GetSentenceByNo(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, sentence)
		assert.Equal(t, 3, sentence.No)
		assert.Equal(t, "Where is the check-in counter?", sentence.EN)
		assert.Equal(t, "체크인 카운터가 어디인가요?", sentence.KO)
		assert.Empty(t, sentence.AudioURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXSentenceRepository(db)

		mock.ExpectQuery(query).WithArgs(99).WillReturnError(sql.ErrNoRows)

		sentence, err := repo.GetSentenceByNo(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, sentence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXSentenceRepository(db)

		dbErr := errors.New("ORA-03113")
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(dbErr)

		_, err := repo.GetSentenceByNo(ctx, 1)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestSQLXSentenceRepository_SaveSentence(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXSentenceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("MERGE INTO sentences s")).
		WithArgs(5, "How much is this?", "이거 얼마예요?", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveSentence(context.Background(), &domain.TargetSentence{
		No: 5,
		EN: "How much is this?",
		KO: "이거 얼마예요?",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXSpeakingAttemptRepository_CreateAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXSpeakingAttemptRepository(db)

	attempt := &domain.SpeakingAttempt{
		UserID:     "user-1",
		CourseID:   "course-1",
		SentenceNo: 3,
		Transcript: "where is the check in counter",
		IsCorrect:  true,
		Tier:       domain.TierExact,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO speaking_attempts")).
		WithArgs(sqlmock.AnyArg(), "user-1", "course-1", 3, "where is the check in counter", 1, "exact", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAttempt(context.Background(), attempt)
	require.NoError(t, err)
	assert.Len(t, attempt.ID, 26, "ULID assigned")
	assert.False(t, attempt.AttemptedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXActivityRepository_CountActivities(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXActivityRepository(db)

		args := make([]driver.Value, 0, 18)
		for i := 0; i < 9; i++ {
			args = append(args, "user-1", "course-1")
		}
		rows := sqlmock.NewRows([]string{
			"VIDEO_SECONDS", "AUDIO_ATTEMPTS", "RECORDING_ATTEMPTS", "QUIZ_ATTEMPTS", "QUIZ_CORRECT",
			"ATTENDANCE_DAYS", "VOICE_OPEN_COUNT", "VOICE_LIKES_RECEIVED", "VOICE_LIKES_GIVEN",
		}).AddRow(10.0, 2, 1, 3, 2, 1, 0, 0, 0)
		mock.ExpectQuery(regexp.QuoteMeta("FROM video_views WHERE user_id = :1 AND course_id = :2")).
			WithArgs(args...).
			WillReturnRows(rows)

		counts, err := repo.CountActivities(ctx, "user-1", "course-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ActivityCounts{
			VideoSeconds:      10,
			AudioAttempts:     2,
			RecordingAttempts: 1,
			QuizAttempts:      3,
			QuizCorrect:       2,
			AttendanceDays:    1,
		}, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXActivityRepository(db)

		mock.ExpectQuery("FROM dual").WillReturnError(errors.New("connection reset"))

		_, err := repo.CountActivities(ctx, "user-1", "course-1")
		assert.ErrorContains(t, err, "failed to count activities")
	})
}

func TestSQLXEnrollmentRepository_ListActiveEnrollments(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"USER_ID", "COURSE_ID", "STATUS"}).
		AddRow("user-1", "course-1", "ACTIVE").
		AddRow(nil, "course-1", "ACTIVE")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, course_id, status FROM enrollments WHERE course_id = :1 AND status = :2")).
		WithArgs("course-1", domain.EnrollmentStatusActive).
		WillReturnRows(rows)

	enrollments, err := repo.ListActiveEnrollments(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Enrollment{
		{UserID: "user-1", CourseID: "course-1", Status: "ACTIVE"},
		{UserID: "", CourseID: "course-1", Status: "ACTIVE"},
	}, enrollments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCoursePointsRepository_UpsertCoursePoints(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCoursePointsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("MERGE INTO course_points cp")).
		WithArgs("user-1", "course-1", int64(92), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertCoursePoints(context.Background(), &domain.CoursePoints{
		UserID:      "user-1",
		CourseID:    "course-1",
		TotalPoints: 92,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCoursePointsRepository_ListRanking(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCoursePointsRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"USER_ID", "COURSE_ID", "TOTAL_POINTS", "UPDATED_AT"}).
		AddRow("user-2", "course-1", 300, now).
		AddRow("user-1", "course-1", 92, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM course_points")).
		WithArgs("course-1", 10).
		WillReturnRows(rows)

	entries, err := repo.ListRanking(context.Background(), "course-1", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankingEntry{
		{Rank: 1, UserID: "user-2", TotalPoints: 300},
		{Rank: 2, UserID: "user-1", TotalPoints: 92},
	}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
