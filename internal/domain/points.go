package domain

import (
	"context"
	"time"
)

// Activity identifies one weighted row of the point table.
type Activity string

const (
	ActivityVideoSeconds       Activity = "video_seconds"
	ActivityAudioAttempts      Activity = "audio_attempts"
	ActivityRecordingAttempts  Activity = "recording_attempts"
	ActivityQuizAttempts       Activity = "quiz_attempts"
	ActivityQuizCorrect        Activity = "quiz_correct"
	ActivityAttendanceDays     Activity = "attendance_days"
	ActivityVoiceOpenCount     Activity = "voice_open_count"
	ActivityVoiceLikesReceived Activity = "voice_likes_received"
	ActivityVoiceLikesGiven    Activity = "voice_likes_given"
)

// ActivityCounts are a user's raw activity totals within one course.
type ActivityCounts struct {
	VideoSeconds       float64 `json:"video_seconds" db:"VIDEO_SECONDS"`
	AudioAttempts      int64   `json:"audio_attempts" db:"AUDIO_ATTEMPTS"`
	RecordingAttempts  int64   `json:"recording_attempts" db:"RECORDING_ATTEMPTS"`
	QuizAttempts       int64   `json:"quiz_attempts" db:"QUIZ_ATTEMPTS"`
	QuizCorrect        int64   `json:"quiz_correct" db:"QUIZ_CORRECT"`
	AttendanceDays     int64   `json:"attendance_days" db:"ATTENDANCE_DAYS"`
	VoiceOpenCount     int64   `json:"voice_open_count" db:"VOICE_OPEN_COUNT"`
	VoiceLikesReceived int64   `json:"voice_likes_received" db:"VOICE_LIKES_RECEIVED"`
	VoiceLikesGiven    int64   `json:"voice_likes_given" db:"VOICE_LIKES_GIVEN"`
}

// PointLine is one activity row of a breakdown.
type PointLine struct {
	Activity Activity `json:"activity"`
	RawCount float64  `json:"raw_count"`
	Weight   float64  `json:"weight"`
	Points   float64  `json:"points"`
}

// PointBreakdown is the weighted score of one ActivityCounts value.
type PointBreakdown struct {
	Lines       []PointLine `json:"lines"`
	TotalPoints int64       `json:"total_points"`
}

// TeamPointsResult sums the points of a course's active roster.
type TeamPointsResult struct {
	TotalTeamPoints int64 `json:"total_team_points"`
	StudentCount    int   `json:"student_count"`
}

// EnrollmentStatusActive marks a user currently taking the course.
const EnrollmentStatusActive = "ACTIVE"

// Enrollment links a user to a course. UserID may be empty when the
// enrolled account no longer resolves.
type Enrollment struct {
	UserID   string
	CourseID string
	Status   string
}

// CoursePoints is a persisted point total.
type CoursePoints struct {
	UserID      string
	CourseID    string
	TotalPoints int64
	UpdatedAt   time.Time
}

// RankingEntry is one row of a course leaderboard.
type RankingEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	TotalPoints int64  `json:"total_points"`
}

// ActivityRepository aggregates raw activity counts.
type ActivityRepository interface {
	CountActivities(ctx context.Context, userID, courseID string) (ActivityCounts, error)
}

// EnrollmentRepository lists course rosters.
type EnrollmentRepository interface {
	ListActiveEnrollments(ctx context.Context, courseID string) ([]Enrollment, error)
}

// CoursePointsRepository persists computed totals.
type CoursePointsRepository interface {
	UpsertCoursePoints(ctx context.Context, points *CoursePoints) error
	ListRanking(ctx context.Context, courseID string, limit int) ([]RankingEntry, error)
}

// Leaderboard keeps a per-course ordering of users by points.
type Leaderboard interface {
	SetScore(ctx context.Context, courseID, userID string, points int64) error
	Top(ctx context.Context, courseID string, limit int) ([]RankingEntry, error)
	RankOf(ctx context.Context, courseID, userID string) (int, error)
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
