package question

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/notation"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func fixed(q Question) GenerateFunc {
	return func(Env) (Question, error) { return q, nil }
}

func TestGenerateOneEmptySet(t *testing.T) {
	_, err := NewSet("Empty").GenerateOne(newRand(1), Options{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGenerateOneStampsSubjectAndKind(t *testing.T) {
	set := NewSet("Arithmetic", Kind{Name: "only", Generate: fixed(Question{
		Text:         "Combien font 2+2 ?",
		Answers:      []Value{Int(3), Int(4), Int(5)},
		CorrectIndex: 1,
	})})

	q, err := set.GenerateOne(newRand(1), Options{})
	require.NoError(t, err)
	assert.Equal(t, "Arithmetic", q.Subject)
	assert.Equal(t, "only", q.Kind)
	assert.Equal(t, Int(4), q.Correct())
	assert.Equal(t, 1, set.Count())
}

func TestGenerateOneReshufflesYesNo(t *testing.T) {
	set := NewSet("Arithmetic", Kind{Name: "yes_no", Generate: fixed(Question{
		Text:         "7 est-il premier ?",
		Answers:      []Value{Bool(true), Bool(false)},
		CorrectIndex: 0,
	})})

	positions := map[int]int{}
	r := newRand(3)
	for range 400 {
		q, err := set.GenerateOne(r, Options{})
		require.NoError(t, err)
		assert.Equal(t, Bool(true), q.Correct())
		positions[q.CorrectIndex]++
	}
	assert.Greater(t, positions[0], 100)
	assert.Greater(t, positions[1], 100)
}

func TestGenerateOneRejectsMalformed(t *testing.T) {
	cases := map[string]Question{
		"index out of range": {Text: "q", Answers: []Value{Int(1), Int(2), Int(3)}, CorrectIndex: 3},
		"duplicates":         {Text: "q", Answers: []Value{Int(1), Int(1), Int(3)}, CorrectIndex: 0},
		"mixed kinds":        {Text: "q", Answers: []Value{Int(1), Text("1")}, CorrectIndex: 0},
		"too many":           {Text: "q", Answers: []Value{Int(1), Int(2), Int(3), Int(4), Int(5)}, CorrectIndex: 0},
		"single":             {Text: "q", Answers: []Value{Int(1)}, CorrectIndex: 0},
		"no text":            {Answers: []Value{Int(1), Int(2)}, CorrectIndex: 0},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			set := NewSet("Algebra", Kind{Name: "broken", Generate: fixed(q)})
			_, err := set.GenerateOne(newRand(1), Options{})
			var malformed *MalformedResultError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, "Algebra", malformed.Subject)
			assert.Equal(t, "broken", malformed.Kind)
		})
	}
}

func TestGenerateByKindName(t *testing.T) {
	set := NewSet("Geometry",
		Kind{Name: "a", Generate: fixed(Question{Text: "a", Answers: []Value{Text("x"), Text("y"), Text("z")}})},
		Kind{Name: "b", Generate: fixed(Question{Text: "b", Answers: []Value{Text("x"), Text("y"), Text("z")}, CorrectIndex: 2})},
	)
	q, err := set.Generate(newRand(1), "b", Options{})
	require.NoError(t, err)
	assert.Equal(t, "b", q.Text)
	assert.Equal(t, []string{"a", "b"}, set.KindNames())

	_, err = set.Generate(newRand(1), "c", Options{})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestEnvNum(t *testing.T) {
	plain := Env{}
	assert.Equal(t, Int(-3), plain.Num(-3))

	latex := Env{Notation: notation.LaTeX}
	assert.Equal(t, Text("$-3$"), latex.Num(-3))
}

func TestQuestionJSON(t *testing.T) {
	q := Question{
		Text:         "Le nombre 49 est-il un carré parfait ?",
		Answers:      []Value{Bool(false), Bool(true)},
		CorrectIndex: 1,
		Subject:      "Arithmetic",
		Kind:         "perfect_square",
	}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"question": "Le nombre 49 est-il un carré parfait ?",
		"suggested_answer": [false, true],
		"index_answer": 1,
		"subject": "Arithmetic",
		"question_name": "perfect_square"
	}`, string(data))

	var back Question
	require.NoError(t, json.Unmarshal([]byte(`{"question":"q","suggested_answer":[12,"$3$",true],"index_answer":0}`), &back))
	assert.Equal(t, []Value{Int(12), Text("$3$"), Bool(true)}, back.Answers)
}

func TestFingerprint(t *testing.T) {
	a := Question{Text: "q", Answers: []Value{Int(1), Int(2)}, Subject: "Algebra", Kind: "k"}
	b := a
	b.Answers = []Value{Int(1), Int(3)}
	assert.Len(t, a.Fingerprint(), 32)
	assert.Equal(t, a.Fingerprint(), a.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
