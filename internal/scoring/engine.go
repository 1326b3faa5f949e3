package scoring

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrMissingAnswers is returned when a submission has no answers entry.
	ErrMissingAnswers = errors.New("submission has no answers")
	// ErrInvalidElapsed is returned when a response time makes the time
	// weight undefined or negative.
	ErrInvalidElapsed = errors.New("invalid response time")
)

// ScoringConfig holds the constants of the time-weighted score.
type ScoringConfig struct {
	Scale  float64 // default: 100
	Offset float64 // default: 2, added to the response time before log10
}

// DefaultScoringConfig returns production defaults.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Scale:  100,
		Offset: 2,
	}
}

// Engine computes server-side scores with configurable constants.
type Engine struct {
	config ScoringConfig
}

// NewEngine creates a scoring engine with the provided config.
func NewEngine(config ScoringConfig) *Engine {
	return &Engine{config: config}
}

// AnswerRecord is one answered question as reported by the client.
type AnswerRecord struct {
	QuestionName string  `json:"question_name"`
	Subject      string  `json:"subject"`
	TimeTaken    float64 `json:"timeTaken" validate:"gte=0"`
	Correct      bool    `json:"correct_answer"`
}

// Submission is a finished quiz. A nil Answers map means the client sent
// no answers entry at all.
type Submission struct {
	Answers map[string]AnswerRecord `json:"answers" validate:"dive"`
}

// CalculateScore computes points for a single answer.
// Formula: scale / log10(timeTaken + offset) when correct, 0 otherwise.
func (e *Engine) CalculateScore(ans AnswerRecord) (float64, error) {
	arg := ans.TimeTaken + e.config.Offset
	weight := math.Log10(arg)
	if math.IsNaN(arg) || arg <= 0 || weight == 0 {
		return 0, fmt.Errorf("%w: timeTaken %v with offset %v", ErrInvalidElapsed, ans.TimeTaken, e.config.Offset)
	}
	if !ans.Correct {
		return 0, nil
	}
	return e.config.Scale / weight, nil
}

// ComputeFinalScore sums the answer scores, rounded to two decimals, and
// returns the share of correct answers.
func (e *Engine) ComputeFinalScore(sub Submission) (score float64, accuracy float64, err error) {
	if sub.Answers == nil {
		return 0, 0, ErrMissingAnswers
	}
	keys := make([]string, 0, len(sub.Answers))
	for k := range sub.Answers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	correct := 0
	for _, k := range keys {
		ans := sub.Answers[k]
		points, err := e.CalculateScore(ans)
		if err != nil {
			return 0, 0, fmt.Errorf("answer %s: %w", k, err)
		}
		score += points
		if ans.Correct {
			correct++
		}
	}
	if len(keys) > 0 {
		accuracy = float64(correct) / float64(len(keys))
	}
	return math.Round(score*100) / 100, accuracy, nil
}
