package models

import (
	"database/sql"
	"time"
)

// Sentence is a row of the sentences table.
type Sentence struct {
	SentenceNo int            `db:"SENTENCE_NO"`
	EN         string         `db:"EN"`
	KO         sql.NullString `db:"KO"`
	AudioURL   sql.NullString `db:"AUDIO_URL"`
	CreatedAt  time.Time      `db:"CREATED_AT"`
}

// SpeakingAttempt is one recorded comparison verdict.
type SpeakingAttempt struct {
	ID          string    `db:"ID"` // ULID
	UserID      string    `db:"USER_ID"`
	CourseID    string    `db:"COURSE_ID"`
	SentenceNo  int       `db:"SENTENCE_NO"`
	Transcript  string    `db:"TRANSCRIPT"`
	IsCorrect   int       `db:"IS_CORRECT"` // Oracle NUMBER(1)
	Tier        string    `db:"TIER"`
	AttemptedAt time.Time `db:"ATTEMPTED_AT"`
	CreatedAt   time.Time `db:"CREATED_AT"`
}
