// Package quiz picks a subject for each request and generates a question
// from it.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/metrics"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const defaultDedupAttempts = 5

// Request describes one question to generate.
type Request struct {
	Subjects []string
	LaTeX    bool
	// SessionID enables de-duplication against the session's recent
	// questions when a RecentStore is configured.
	SessionID string
	// Seed makes the question reproducible.
	Seed *uint64
}

// Options tunes a Generator.
type Options struct {
	Recent        RecentStore
	Metrics       *metrics.Metrics
	DedupAttempts int
}

// Generator is safe for concurrent use; every request draws from its own
// random source.
type Generator struct {
	catalog       *catalog.Catalog
	recent        RecentStore
	metrics       *metrics.Metrics
	dedupAttempts int
	logger        zerolog.Logger
}

func NewGenerator(cat *catalog.Catalog, logger zerolog.Logger, opts Options) *Generator {
	if opts.DedupAttempts <= 0 {
		opts.DedupAttempts = defaultDedupAttempts
	}
	return &Generator{
		catalog:       cat,
		recent:        opts.Recent,
		metrics:       opts.Metrics,
		dedupAttempts: opts.DedupAttempts,
		logger:        logger,
	}
}

// NewRand returns the random source of a request.
func NewRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate filters the requested subjects against the catalog, picks one
// with probability proportional to its number of kinds and returns one of
// its questions.
func (g *Generator) Generate(ctx context.Context, req Request) (question.Question, error) {
	logger := logging.FromContextOr(ctx, g.logger)
	r := NewRand(req.Seed)
	sets := g.catalog.Resolve(req.Subjects)
	opts := question.Options{LaTeX: req.LaTeX}

	dedup := g.recent != nil && req.SessionID != ""
	for attempt := 1; ; attempt++ {
		q, err := g.generateOnce(r, sets, opts)
		if err != nil {
			g.metrics.GenerationFailed(failureReason(err))
			return question.Question{}, err
		}
		if !dedup {
			g.metrics.QuestionGenerated(q.Subject, q.Kind)
			return q, nil
		}

		fp := q.Fingerprint()
		seen, err := g.recent.Seen(ctx, req.SessionID, fp)
		if err != nil {
			logger.Warn().Err(err).Str("session_id", req.SessionID).Msg("recent store lookup failed; serving without de-duplication")
			g.metrics.QuestionGenerated(q.Subject, q.Kind)
			return q, nil
		}
		if !seen || attempt >= g.dedupAttempts {
			if err := g.recent.Remember(ctx, req.SessionID, fp); err != nil {
				logger.Warn().Err(err).Str("session_id", req.SessionID).Msg("recent store write failed")
			}
			g.metrics.QuestionGenerated(q.Subject, q.Kind)
			return q, nil
		}
		g.metrics.DedupRetry()
		logger.Debug().Str("kind", q.Kind).Int("attempt", attempt).Msg("question already served in session, regenerating")
	}
}

func (g *Generator) generateOnce(r *rand.Rand, sets []*question.Set, opts question.Options) (question.Question, error) {
	weights := make([]int, len(sets))
	for i, s := range sets {
		weights[i] = s.Count()
	}
	i := mathutil.WeightedIndex(r, weights)
	if i < 0 {
		return question.Question{}, fmt.Errorf("%w: no subject has question kinds", question.ErrConfiguration)
	}
	return sets[i].GenerateOne(r, opts)
}

// Catalog exposes the subjects the generator draws from.
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

func failureReason(err error) string {
	var malformed *question.MalformedResultError
	switch {
	case errors.As(err, &malformed):
		return "malformed_result"
	case errors.Is(err, question.ErrConfiguration):
		return "configuration"
	default:
		return "unknown"
	}
}
