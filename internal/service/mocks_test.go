package service

import (
	"context"
	"time"

	"speak-byte/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockSentenceRepository ---
type MockSentenceRepository struct {
	mock.Mock
}

func (m *MockSentenceRepository) GetSentenceByNo(ctx context.Context, no int) (*domain.TargetSentence, error) {
	args := m.Called(ctx, no)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TargetSentence), args.Error(1)
}

func (m *MockSentenceRepository) SaveSentence(ctx context.Context, sentence *domain.TargetSentence) error {
	args := m.Called(ctx, sentence)
	return args.Error(0)
}

// --- MockSpeakingAttemptRepository ---
type MockSpeakingAttemptRepository struct {
	mock.Mock
}

func (m *MockSpeakingAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.SpeakingAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CountActivities(ctx context.Context, userID, courseID string) (domain.ActivityCounts, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Get(0).(domain.ActivityCounts), args.Error(1)
}

// --- MockEnrollmentRepository ---
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) ListActiveEnrollments(ctx context.Context, courseID string) ([]domain.Enrollment, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

// --- MockCoursePointsRepository ---
type MockCoursePointsRepository struct {
	mock.Mock
}

func (m *MockCoursePointsRepository) UpsertCoursePoints(ctx context.Context, points *domain.CoursePoints) error {
	args := m.Called(ctx, points)
	return args.Error(0)
}

func (m *MockCoursePointsRepository) ListRanking(ctx context.Context, courseID string, limit int) ([]domain.RankingEntry, error) {
	args := m.Called(ctx, courseID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankingEntry), args.Error(1)
}

// --- MockLeaderboard ---
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) SetScore(ctx context.Context, courseID, userID string, points int64) error {
	args := m.Called(ctx, courseID, userID, points)
	return args.Error(0)
}

func (m *MockLeaderboard) Top(ctx context.Context, courseID string, limit int) ([]domain.RankingEntry, error) {
	args := m.Called(ctx, courseID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankingEntry), args.Error(1)
}

func (m *MockLeaderboard) RankOf(ctx context.Context, courseID, userID string) (int, error) {
	args := m.Called(ctx, courseID, userID)
	return args.Int(0), args.Error(1)
}

// --- MockTransactionManager ---
// MockTransactionManager runs fn directly and reports whether it was used.
type MockTransactionManager struct {
	calls int
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
