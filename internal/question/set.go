package question

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
)

// Options carries per-request rendering choices.
type Options struct {
	LaTeX bool
}

// Env is what a generator draws from: the request's random source and
// notation.
type Env struct {
	Rand     *rand.Rand
	Notation notation.Notation
}

// Num turns an integer answer into a Value: a raw integer in plain text,
// a wrapped math string in LaTeX.
func (e Env) Num(n int) Value {
	if e.Notation.IsLaTeX() {
		return Text(e.Notation.Wrap(strconv.Itoa(n)))
	}
	return Int(n)
}

func (e Env) Nums(ns []int) []Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = e.Num(n)
	}
	return out
}

// Math turns a rendered formula into a text answer.
func (e Env) Math(s string) Value {
	return Text(e.Notation.Wrap(s))
}

// Sentence picks one of the templates and fills it.
func (e Env) Sentence(templates []notation.Sentence, pairs ...string) string {
	return mathutil.Pick(e.Rand, templates).Fill(e.Notation, pairs...)
}

// GenerateFunc builds one question of a kind.
type GenerateFunc func(env Env) (Question, error)

// Kind is a named question generator.
type Kind struct {
	Name     string
	Generate GenerateFunc
}

// Set is the registry of question kinds for one subject.
type Set struct {
	subject string
	kinds   []Kind
}

// NewSet registers kinds under a subject name, in the given order.
func NewSet(subject string, kinds ...Kind) *Set {
	return &Set{subject: subject, kinds: slices.Clone(kinds)}
}

func (s *Set) Subject() string { return s.subject }

// Count is the number of registered kinds, used as the subject's weight.
func (s *Set) Count() int { return len(s.kinds) }

func (s *Set) KindNames() []string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.Name
	}
	return names
}

// GenerateOne picks a kind uniformly and builds a question from it.
func (s *Set) GenerateOne(r *rand.Rand, opts Options) (Question, error) {
	if len(s.kinds) == 0 {
		return Question{}, fmt.Errorf("%w: subject %q has no question kinds", ErrConfiguration, s.subject)
	}
	return s.run(r, mathutil.Pick(r, s.kinds), opts)
}

// Generate builds a question of the named kind.
func (s *Set) Generate(r *rand.Rand, kind string, opts Options) (Question, error) {
	i := slices.IndexFunc(s.kinds, func(k Kind) bool { return k.Name == kind })
	if i < 0 {
		return Question{}, fmt.Errorf("%w: subject %q has no kind %q", ErrConfiguration, s.subject, kind)
	}
	return s.run(r, s.kinds[i], opts)
}

func (s *Set) run(r *rand.Rand, kind Kind, opts Options) (Question, error) {
	env := Env{Rand: r, Notation: notation.For(opts.LaTeX)}
	q, err := kind.Generate(env)
	if err != nil {
		return Question{}, fmt.Errorf("generate %s/%s: %w", s.subject, kind.Name, err)
	}
	// Yes/no answers always come out in generator order.
	if len(q.Answers) == 2 && q.CorrectIndex >= 0 && q.CorrectIndex < 2 {
		correct := q.Answers[q.CorrectIndex]
		q.Answers = mathutil.Shuffle(r, q.Answers)
		q.CorrectIndex = slices.Index(q.Answers, correct)
	}
	q.Subject = s.subject
	q.Kind = kind.Name
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}
