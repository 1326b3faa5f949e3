package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/scoring"
)

type stubStore struct {
	execSQL  string
	execArgs []any
	execErr  error
	rows     *stubRows
}

func (s *stubStore) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.execSQL, s.execArgs = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), s.execErr
}

func (s *stubStore) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return s.rows, nil
}

// stubRows serves pre-built rows of (id, score, accuracy, answers, created_at).
type stubRows struct {
	pgx.Rows
	data   [][]any
	pos    int
	closed bool
}

func (r *stubRows) Next() bool {
	r.pos++
	return r.pos <= len(r.data)
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	*dest[0].(*pgtype.UUID) = row[0].(pgtype.UUID)
	*dest[1].(*float64) = row[1].(float64)
	*dest[2].(*float64) = row[2].(float64)
	*dest[3].(*[]byte) = row[3].([]byte)
	*dest[4].(*pgtype.Timestamptz) = row[4].(pgtype.Timestamptz)
	return nil
}

func (r *stubRows) Err() error { return nil }
func (r *stubRows) Close()     { r.closed = true }

func TestSaveEncodesAnswers(t *testing.T) {
	store := &stubStore{}
	repo := NewSubmissionRepository(store)
	id := uuid.New()
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := repo.Save(context.Background(), scoring.Record{
		ID:        id,
		Score:     118.33,
		Accuracy:  1,
		Answers:   map[string]scoring.AnswerRecord{"0": {QuestionName: "perfect_square", TimeTaken: 5, Correct: true}},
		CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Contains(t, store.execSQL, "INSERT INTO quiz_submissions")
	require.Len(t, store.execArgs, 5)
	assert.Equal(t, pgtype.UUID{Bytes: id, Valid: true}, store.execArgs[0])
	assert.Equal(t, 118.33, store.execArgs[1])
	assert.JSONEq(t, `{"0":{"question_name":"perfect_square","subject":"","timeTaken":5,"correct_answer":true}}`, string(store.execArgs[3].([]byte)))
}

func TestSaveWrapsStoreError(t *testing.T) {
	repo := NewSubmissionRepository(&stubStore{execErr: errors.New("connection refused")})
	err := repo.Save(context.Background(), scoring.Record{ID: uuid.New()})
	assert.ErrorContains(t, err, "insert submission")
}

func TestRecentDecodesRows(t *testing.T) {
	id := uuid.New()
	answers, err := json.Marshal(map[string]scoring.AnswerRecord{"0": {Subject: "Algebra", TimeTaken: 8, Correct: true}})
	require.NoError(t, err)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := &stubRows{data: [][]any{{
		pgtype.UUID{Bytes: id, Valid: true}, 100.0, 1.0, answers, pgtype.Timestamptz{Time: created, Valid: true},
	}}}

	got, err := NewSubmissionRepository(&stubStore{rows: rows}).Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, 100.0, got[0].Score)
	assert.Equal(t, "Algebra", got[0].Answers["0"].Subject)
	assert.Equal(t, created, got[0].CreatedAt)
	assert.True(t, rows.closed)
}
