package dto

import "speak-byte/internal/domain"

// PointsResponse represents a user's course points
// @Description Weighted point breakdown of one user in one course
type PointsResponse struct {
	UserID      string             `json:"user_id"`
	CourseID    string             `json:"course_id"`
	TotalPoints int64              `json:"total_points"`
	Lines       []domain.PointLine `json:"lines"`
}

// SyncPointsResponse is returned after a total was persisted
type SyncPointsResponse struct {
	CourseID    string `json:"course_id"`
	TotalPoints int64  `json:"total_points"`
	Rank        int    `json:"rank,omitempty"`
}

// TeamPointsResponse represents a course's summed points
type TeamPointsResponse struct {
	CourseID        string `json:"course_id"`
	TotalTeamPoints int64  `json:"total_team_points"`
	StudentCount    int    `json:"student_count"`
}

// RankingResponse represents a course leaderboard
type RankingResponse struct {
	CourseID string                `json:"course_id"`
	Entries  []domain.RankingEntry `json:"entries"`
	// Source is "cache" when served from Redis and "database" otherwise.
	Source string `json:"source"`
}

// HealthResponse represents the health check result
type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}
