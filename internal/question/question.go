// Package question holds the question model and the per-subject registry
// of generators.
package question

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

// ErrConfiguration is returned when a registry or generator is set up in a
// way that cannot produce a question.
var ErrConfiguration = mathutil.ErrConfiguration

// Question is the payload delivered to clients.
type Question struct {
	Text         string  `json:"question"`
	Answers      []Value `json:"suggested_answer"`
	CorrectIndex int     `json:"index_answer"`
	Subject      string  `json:"subject"`
	Kind         string  `json:"question_name"`
}

// FromValues builds a question whose correct index is the position of
// correct among answers, or -1 when it is missing.
func FromValues(text string, answers []Value, correct Value) Question {
	idx := -1
	for i, a := range answers {
		if a == correct {
			idx = i
			break
		}
	}
	return Question{Text: text, Answers: answers, CorrectIndex: idx}
}

// Correct returns the right answer. The question must be valid.
func (q Question) Correct() Value {
	return q.Answers[q.CorrectIndex]
}

// Fingerprint identifies a question by kind, text and answers.
func (q Question) Fingerprint() string {
	var b strings.Builder
	b.WriteString(q.Subject)
	b.WriteByte(0)
	b.WriteString(q.Kind)
	b.WriteByte(0)
	b.WriteString(q.Text)
	for _, a := range q.Answers {
		b.WriteByte(0)
		b.WriteString(a.String())
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:16])
}

// MalformedResultError reports a generator that returned a question
// breaking the model rules.
type MalformedResultError struct {
	Subject string
	Kind    string
	Message string
}

func (e *MalformedResultError) Error() string {
	return fmt.Sprintf("malformed %s/%s question: %s", e.Subject, e.Kind, e.Message)
}

// Validate checks answer count, index bounds, distinctness and that every
// answer has the same kind.
func (q Question) Validate() error {
	fail := func(format string, args ...any) error {
		return &MalformedResultError{Subject: q.Subject, Kind: q.Kind, Message: fmt.Sprintf(format, args...)}
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("empty question text")
	}
	if n := len(q.Answers); n < 2 || n > 4 {
		return fail("%d suggested answers, want 2 to 4", n)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Answers) {
		return fail("index_answer %d out of range", q.CorrectIndex)
	}
	seen := make(map[Value]struct{}, len(q.Answers))
	kind := q.Answers[0].Kind()
	for _, a := range q.Answers {
		if a.Kind() == 0 {
			return fail("unset answer")
		}
		if a.Kind() != kind {
			return fail("mixed answer kinds %s and %s", kind, a.Kind())
		}
		if _, dup := seen[a]; dup {
			return fail("duplicate answer %q", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}
