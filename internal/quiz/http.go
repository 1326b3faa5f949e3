package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/question"
	"github.com/gokatarajesh/qcm-math/internal/validation"
	httperrors "github.com/gokatarajesh/qcm-math/pkg/http/errors"
)

// HTTPHandler serves question generation.
type HTTPHandler struct {
	generator *Generator
	validator *validation.Validator
	logger    zerolog.Logger
}

func NewHTTPHandler(generator *Generator, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{generator: generator, validator: validation.New(), logger: logger}
}

// subjectList accepts either a list of names or a single string such as
// "*".
type subjectList []string

func (s *subjectList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = subjectList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

type generateRequest struct {
	Subjects  subjectList `json:"subjects"`
	LaTeX     *bool       `json:"latex"`
	SessionID string      `json:"session_id" validate:"omitempty,max=128"`
	Seed      *uint64     `json:"seed"`
}

// HandleGenerate handles POST /api/generate. An empty body asks for any
// subject rendered in LaTeX.
func (h *HTTPHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContextOr(r.Context(), h.logger)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "request body must be JSON")
		return
	}
	if fields := h.validator.Struct(req); fields != nil {
		field, msg := validation.First(fields)
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, msg, field)
		return
	}

	latex := true
	if req.LaTeX != nil {
		latex = *req.LaTeX
	}
	q, err := h.generator.Generate(r.Context(), Request{
		Subjects:  req.Subjects,
		LaTeX:     latex,
		SessionID: req.SessionID,
		Seed:      req.Seed,
	})
	if err != nil {
		logger.Error().Err(err).Strs("subjects", req.Subjects).Msg("question generation failed")
		var malformed *question.MalformedResultError
		if errors.As(err, &malformed) {
			httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeMalformedResult, "generator produced an invalid question")
			return
		}
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeGenerationFailed, "could not generate a question")
		return
	}
	httperrors.RespondJSON(w, http.StatusOK, q)
}

// SubjectInfo describes one subject of the catalog.
type SubjectInfo struct {
	Name   string   `json:"name"`
	Weight int      `json:"weight"`
	Kinds  []string `json:"kinds"`
}

// HandleSubjects handles GET /api/subjects.
func (h *HTTPHandler) HandleSubjects(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondJSON(w, http.StatusOK, map[string]any{"subjects": Describe(h.generator.Catalog())})
}

// Describe lists the subjects of a catalog with their kinds.
func Describe(cat *catalog.Catalog) []SubjectInfo {
	var out []SubjectInfo
	for _, name := range cat.Names() {
		set, _ := cat.Lookup(name)
		out = append(out, SubjectInfo{Name: name, Weight: set.Count(), Kinds: set.KindNames()})
	}
	return out
}
