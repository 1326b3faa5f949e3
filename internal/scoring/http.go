package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/metrics"
	"github.com/gokatarajesh/qcm-math/internal/validation"
	httperrors "github.com/gokatarajesh/qcm-math/pkg/http/errors"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Record is a scored submission as kept in the history.
type Record struct {
	ID        uuid.UUID               `json:"id"`
	Score     float64                 `json:"score"`
	Accuracy  float64                 `json:"accuracy"`
	Answers   map[string]AnswerRecord `json:"answers"`
	CreatedAt time.Time               `json:"created_at"`
}

// Recorder persists scored submissions.
type Recorder interface {
	Save(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}

// HTTPHandler exposes scoring over HTTP. The recorder is optional.
type HTTPHandler struct {
	engine    *Engine
	recorder  Recorder
	metrics   *metrics.Metrics
	validator *validation.Validator
	logger    zerolog.Logger
	now       func() time.Time
}

func NewHTTPHandler(engine *Engine, recorder Recorder, m *metrics.Metrics, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		engine:    engine,
		recorder:  recorder,
		metrics:   m,
		validator: validation.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// scoreRequest accepts the front end envelope {"metaData": {"answers": ...}}
// as well as a bare {"answers": ...}.
type scoreRequest struct {
	MetaData *Submission             `json:"metaData"`
	Answers  map[string]AnswerRecord `json:"answers"`
}

type scoreResponse struct {
	Score        float64    `json:"score"`
	Accuracy     float64    `json:"accuracy"`
	SubmissionID *uuid.UUID `json:"submission_id,omitempty"`
}

// DecodeSubmission reads a submission in either of the accepted shapes.
func DecodeSubmission(r io.Reader) (Submission, error) {
	var req scoreRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return Submission{}, err
	}
	if req.MetaData != nil {
		return *req.MetaData, nil
	}
	return Submission{Answers: req.Answers}, nil
}

// HandleScore handles POST /api/score.
func (h *HTTPHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContextOr(r.Context(), h.logger)

	sub, err := DecodeSubmission(r.Body)
	if err != nil {
		h.metrics.Rejected(httperrors.ErrCodeInvalidRequest)
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "request body must be JSON")
		return
	}
	if fields := h.validator.Struct(sub); fields != nil {
		field, msg := validation.First(fields)
		h.metrics.Rejected(httperrors.ErrCodeInvalidElapsed)
		httperrors.RespondValidationError(w, httperrors.ErrCodeInvalidElapsed, msg, field)
		return
	}

	score, accuracy, err := h.engine.ComputeFinalScore(sub)
	switch {
	case errors.Is(err, ErrMissingAnswers):
		h.metrics.Rejected(httperrors.ErrCodeMissingAnswers)
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingAnswers, "metaData.answers is required", "metaData.answers")
		return
	case errors.Is(err, ErrInvalidElapsed):
		h.metrics.Rejected(httperrors.ErrCodeInvalidElapsed)
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidElapsed, err.Error())
		return
	case err != nil:
		logger.Error().Err(err).Msg("score computation failed")
		httperrors.RespondInternalError(w, "could not compute score")
		return
	}
	h.metrics.Scored(score)

	resp := scoreResponse{Score: score, Accuracy: accuracy}
	if h.recorder != nil {
		rec := Record{ID: uuid.New(), Score: score, Accuracy: accuracy, Answers: sub.Answers, CreatedAt: h.now().UTC()}
		if err := h.recorder.Save(r.Context(), rec); err != nil {
			logger.Warn().Err(err).Msg("score history write failed")
		} else {
			resp.SubmissionID = &rec.ID
		}
	}
	logger.Info().Float64("score", score).Int("answers", len(sub.Answers)).Msg("submission scored")
	httperrors.RespondJSON(w, http.StatusOK, resp)
}

// HandleRecent handles GET /api/scores/recent?limit=N.
func (h *HTTPHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if h.recorder == nil {
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeStoreUnavailable, "score history is not configured")
		return
	}
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentLimit {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "limit must be between 1 and 100", "limit")
			return
		}
		limit = n
	}
	records, err := h.recorder.Recent(r.Context(), limit)
	if err != nil {
		logger := logging.FromContextOr(r.Context(), h.logger)
		logger.Error().Err(err).Msg("score history read failed")
		httperrors.RespondInternalError(w, "could not read score history")
		return
	}
	if records == nil {
		records = []Record{}
	}
	httperrors.RespondJSON(w, http.StatusOK, map[string]any{"submissions": records})
}
