package models

import (
	"database/sql"
	"time"
)

// Enrollment is a row of the enrollments table. USER_ID is nullable because
// accounts can be removed while their enrollment row remains.
type Enrollment struct {
	UserID   sql.NullString `db:"USER_ID"`
	CourseID string         `db:"COURSE_ID"`
	Status   string         `db:"STATUS"`
}

// CoursePoints is a row of the course_points table.
type CoursePoints struct {
	UserID      string    `db:"USER_ID"`
	CourseID    string    `db:"COURSE_ID"`
	TotalPoints int64     `db:"TOTAL_POINTS"`
	UpdatedAt   time.Time `db:"UPDATED_AT"`
}
