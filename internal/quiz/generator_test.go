package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/catalog"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

func stubKind(name string, texts func() string) question.Kind {
	return question.Kind{Name: name, Generate: func(question.Env) (question.Question, error) {
		return question.Question{
			Text:         texts(),
			Answers:      []question.Value{question.Int(1), question.Int(2), question.Int(3)},
			CorrectIndex: 0,
		}, nil
	}}
}

func constant(s string) func() string { return func() string { return s } }

func defaultGenerator(t *testing.T, opts Options) *Generator {
	t.Helper()
	cat, err := catalog.New(catalog.DefaultConfig())
	require.NoError(t, err)
	return NewGenerator(cat, zerolog.Nop(), opts)
}

func TestGenerateWeightsSubjectsByKindCount(t *testing.T) {
	cat := catalog.FromSets(
		question.NewSet("One", stubKind("a", constant("a"))),
		question.NewSet("Three", stubKind("b", constant("b")), stubKind("c", constant("c")), stubKind("d", constant("d"))),
	)
	g := NewGenerator(cat, zerolog.Nop(), Options{})

	const draws = 8000
	counts := map[string]int{}
	for range draws {
		q, err := g.Generate(context.Background(), Request{Subjects: []string{"*"}})
		require.NoError(t, err)
		counts[q.Subject]++
	}
	assert.InDelta(t, 0.25, float64(counts["One"])/draws, 0.03)
	assert.InDelta(t, 0.75, float64(counts["Three"])/draws, 0.03)
}

func TestGenerateRestrictsToRequestedSubjects(t *testing.T) {
	g := defaultGenerator(t, Options{})
	for range 200 {
		q, err := g.Generate(context.Background(), Request{Subjects: []string{"Geometry"}})
		require.NoError(t, err)
		assert.Equal(t, "Geometry", q.Subject)
		assert.Contains(t, []string{"how_many_side", "angles_sum", "triangle_nature", "convert_unit"}, q.Kind)
	}
}

func TestGenerateFallsBackOnUnknownSubjects(t *testing.T) {
	g := defaultGenerator(t, Options{})
	seen := map[string]bool{}
	for range 400 {
		q, err := g.Generate(context.Background(), Request{Subjects: []string{"Unknown"}})
		require.NoError(t, err)
		seen[q.Subject] = true
	}
	assert.Len(t, seen, 4)
}

func TestGenerateEverySubjectBothNotations(t *testing.T) {
	g := defaultGenerator(t, Options{})
	for range 500 {
		for _, latex := range []bool{false, true} {
			q, err := g.Generate(context.Background(), Request{LaTeX: latex})
			require.NoError(t, err)
			require.NoError(t, q.Validate())
		}
	}
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	g := defaultGenerator(t, Options{})
	for seed := range uint64(50) {
		a, err := g.Generate(context.Background(), Request{Seed: &seed, LaTeX: true})
		require.NoError(t, err)
		b, err := g.Generate(context.Background(), Request{Seed: &seed, LaTeX: true})
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	g := NewGenerator(catalog.FromSets(question.NewSet("Empty")), zerolog.Nop(), Options{})
	_, err := g.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, question.ErrConfiguration)
}

func TestGenerateSkipsRecentQuestions(t *testing.T) {
	calls := 0
	texts := func() string {
		calls++
		if calls <= 2 {
			return "first"
		}
		return "second"
	}
	cat := catalog.FromSets(question.NewSet("Stub", stubKind("k", texts)))
	g := NewGenerator(cat, zerolog.Nop(), Options{Recent: NewMemoryRecentStore(time.Minute)})

	q1, err := g.Generate(context.Background(), Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "first", q1.Text)

	q2, err := g.Generate(context.Background(), Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "second", q2.Text)
	assert.Equal(t, 3, calls)

	// Another session has its own memory.
	calls = 0
	q3, err := g.Generate(context.Background(), Request{SessionID: "s2"})
	require.NoError(t, err)
	assert.Equal(t, "first", q3.Text)
}

func TestGenerateGivesUpAfterDedupAttempts(t *testing.T) {
	calls := 0
	texts := func() string {
		calls++
		return "always"
	}
	cat := catalog.FromSets(question.NewSet("Stub", stubKind("k", texts)))
	g := NewGenerator(cat, zerolog.Nop(), Options{Recent: NewMemoryRecentStore(time.Minute), DedupAttempts: 3})

	_, err := g.Generate(context.Background(), Request{SessionID: "s"})
	require.NoError(t, err)
	calls = 0
	q, err := g.Generate(context.Background(), Request{SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, "always", q.Text)
	assert.Equal(t, 3, calls)
}

type failingStore struct{}

func (failingStore) Seen(context.Context, string, string) (bool, error) {
	return false, errors.New("redis down")
}

func (failingStore) Remember(context.Context, string, string) error {
	return errors.New("redis down")
}

func TestGenerateServesWhenRecentStoreFails(t *testing.T) {
	g := defaultGenerator(t, Options{Recent: failingStore{}})
	_, err := g.Generate(context.Background(), Request{SessionID: "s"})
	assert.NoError(t, err)
}

func TestMemoryRecentStoreExpires(t *testing.T) {
	store := NewMemoryRecentStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Remember(ctx, "s", "fp"))
	seen, err := store.Seen(ctx, "s", "fp")
	require.NoError(t, err)
	assert.True(t, seen)

	now = now.Add(2 * time.Minute)
	seen, err = store.Seen(ctx, "s", "fp")
	require.NoError(t, err)
	assert.False(t, seen)
}
