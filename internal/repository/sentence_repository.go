package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speak-byte/internal/domain"
	"speak-byte/internal/repository/models"
	"speak-byte/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxSentenceRepository struct {
	db *sqlx.DB
}

// NewSQLXSentenceRepository creates a sentence repository backed by sqlx.
func NewSQLXSentenceRepository(db *sqlx.DB) domain.SentenceRepository {
	return &sqlxSentenceRepository{db: db}
}

func toDomainSentence(m *models.Sentence) *domain.TargetSentence {
	if m == nil {
		return nil
	}
	return &domain.TargetSentence{
		No:       m.SentenceNo,
		EN:       m.EN,
		KO:       m.KO.String,
		AudioURL: m.AudioURL.String,
	}
}

// GetSentenceByNo returns nil without error when no sentence has that number.
func (r *sqlxSentenceRepository) GetSentenceByNo(ctx context.Context, no int) (*domain.TargetSentence, error) {
	var row models.Sentence
	query := `SELECT sentence_no, en, ko, audio_url, created_at FROM sentences WHERE sentence_no = :1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, no); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sentence %d: %w", no, err)
	}
	return toDomainSentence(&row), nil
}

// SaveSentence inserts the sentence or replaces the one with the same number.
func (r *sqlxSentenceRepository) SaveSentence(ctx context.Context, sentence *domain.TargetSentence) error {
	query := `MERGE INTO sentences s
	          USING (SELECT :1 AS sentence_no, :2 AS en, :3 AS ko, :4 AS audio_url FROM dual) src
	          ON (s.sentence_no = src.sentence_no)
	          WHEN MATCHED THEN UPDATE SET s.en = src.en, s.ko = src.ko, s.audio_url = src.audio_url
	          WHEN NOT MATCHED THEN INSERT (sentence_no, en, ko, audio_url)
	          VALUES (src.sentence_no, src.en, src.ko, src.audio_url)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		sentence.No, sentence.EN,
		util.StringToNullString(sentence.KO),
		util.StringToNullString(sentence.AudioURL))
	if err != nil {
		return fmt.Errorf("failed to save sentence %d: %w", sentence.No, err)
	}
	return nil
}
