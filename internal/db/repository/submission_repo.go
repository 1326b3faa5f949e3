package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/qcm-math/internal/scoring"
)

const (
	insertSubmission = `INSERT INTO quiz_submissions (id, score, accuracy, answers, created_at)
VALUES ($1, $2, $3, $4, $5)`
	recentSubmissions = `SELECT id, score, accuracy, answers, created_at
FROM quiz_submissions
ORDER BY created_at DESC
LIMIT $1`
)

type submissionStore interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SubmissionRepository keeps the history of scored quizzes in Postgres.
type SubmissionRepository struct {
	store submissionStore
}

var _ scoring.Recorder = (*SubmissionRepository)(nil)

func NewSubmissionRepository(store submissionStore) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

func (r *SubmissionRepository) Save(ctx context.Context, rec scoring.Record) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = r.store.Exec(ctx, insertSubmission,
		pgtype.UUID{Bytes: rec.ID, Valid: true},
		rec.Score,
		rec.Accuracy,
		answers,
		pgtype.Timestamptz{Time: rec.CreatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// Recent returns the latest submissions, newest first.
func (r *SubmissionRepository) Recent(ctx context.Context, limit int) ([]scoring.Record, error) {
	rows, err := r.store.Query(ctx, recentSubmissions, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []scoring.Record
	for rows.Next() {
		var (
			id        pgtype.UUID
			rec       scoring.Record
			answers   []byte
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &rec.Score, &rec.Accuracy, &answers, &createdAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if err := json.Unmarshal(answers, &rec.Answers); err != nil {
			return nil, fmt.Errorf("decode answers of %s: %w", uuid.UUID(id.Bytes), err)
		}
		rec.ID = uuid.UUID(id.Bytes)
		rec.CreatedAt = createdAt.Time
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return out, nil
}
