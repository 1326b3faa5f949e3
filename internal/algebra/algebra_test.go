package algebra

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const iterations = 300

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}

func newSet(t *testing.T) *question.Set {
	t.Helper()
	set, err := New(DefaultConfig())
	require.NoError(t, err)
	return set
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(0, "x"))
	assert.Equal(t, "+x", FormatValue(1, "x"))
	assert.Equal(t, "-x", FormatValue(-1, "x"))
	assert.Equal(t, "+1", FormatValue(1, ""))
	assert.Equal(t, "-12x²", FormatValue(-12, "x²"))
}

func TestFormatEquation(t *testing.T) {
	r := newRand(1)
	assert.Equal(t, "2x²-x+5", FormatEquation(notation.Plain, r, false, 2, -1, 5))
	assert.Equal(t, "-x^2+3", FormatEquation(notation.LaTeX, r, false, -1, 0, 3))
	assert.Equal(t, "4x", FormatEquation(notation.Plain, r, false, 4, 0))
	assert.Equal(t, "0", FormatEquation(notation.Plain, r, false, 0, 0))
	assert.Equal(t, "0", FormatEquation(notation.Plain, r, true, 0, 0))

	for range 50 {
		got := FormatEquation(notation.Plain, r, true, 2, -1, 5)
		assert.False(t, strings.HasPrefix(got, "+"), got)
		assert.Equal(t, map[int]int{2: 2, 1: -1, 0: 5}, parsePolynomial(t, got))
	}
}

func TestDefaultSetShufflesEquationTerms(t *testing.T) {
	require.True(t, DefaultConfig().ShuffleEquations)
	set := newSet(t)
	leadingSquare, otherFirst := 0, 0
	for seed := range uint64(200) {
		q, err := set.Generate(newRand(seed), "calculate_discriminant", question.Options{})
		require.NoError(t, err)
		m := quadraticEq.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		coef := parsePolynomial(t, m[1])
		got, _ := q.Correct().Int()
		assert.Equal(t, coef[1]*coef[1]-4*coef[2]*coef[0], got, q.Text)

		if first := firstTerm.FindString(m[1]); strings.HasSuffix(first, "x²") {
			leadingSquare++
		} else {
			otherFirst++
		}
	}
	assert.Positive(t, leadingSquare)
	assert.Positive(t, otherFirst)
}

func TestUnshuffledEquationsLeadWithHighestPower(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShuffleEquations = false
	set, err := New(cfg)
	require.NoError(t, err)
	for seed := range uint64(50) {
		q, err := set.Generate(newRand(seed), "calculate_discriminant", question.Options{})
		require.NoError(t, err)
		m := quadraticEq.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		assert.True(t, strings.HasSuffix(firstTerm.FindString(m[1]), "x²"), q.Text)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AntecedentCoefficient = mathutil.Span(0, 0)
	_, err := New(cfg)
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)

	cfg = DefaultConfig()
	cfg.ImageInput = mathutil.Span(3, -3)
	_, err = New(cfg)
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)

	cfg = DefaultConfig()
	cfg.ProductElevenOdds = 2
	_, err = New(cfg)
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)
}

func TestEveryKindProducesValidQuestions(t *testing.T) {
	set := newSet(t)
	assert.Equal(t, 5, set.Count())
	for _, kind := range set.KindNames() {
		for _, latex := range []bool{false, true} {
			r := newRand(7)
			for range iterations {
				q, err := set.Generate(r, kind, question.Options{LaTeX: latex})
				require.NoError(t, err, kind)
				assert.Len(t, q.Answers, 4, kind)
				assert.Equal(t, Subject, q.Subject)
				assert.Equal(t, kind, q.Kind)
				if latex {
					assert.Equal(t, question.KindText, q.Correct().Kind())
					assert.True(t, strings.HasPrefix(q.Correct().String(), "$"))
				}
			}
		}
	}
}

var (
	antecedentEq    = regexp.MustCompile(`(?:dans|de) (\S+)=(-?\d+) \?$`)
	antecedentFn    = regexp.MustCompile(`antécédent de (-?\d+) avec f\(x\)=(\S+)\.$`)
	imageInput      = regexp.MustCompile(`(?:g\((-?\d+)\)|image de (-?\d+))`)
	imageEquation   = regexp.MustCompile(`(?:g\(x\)=|y=|f\(x\)=)(\S+?)(?: \?|\.)$`)
	quadraticEq     = regexp.MustCompile(`(\S+)=0 ?[?.]?$`)
	factorEquation  = regexp.MustCompile(`(?:y=|f\(x\)=)(\S+?)(?: \?|\.)$`)
	factoredForm    = regexp.MustCompile(`^(-?\d*)\(x([+-]\d+)\)\(x([+-]\d+)\)$`)
	productOperands = regexp.MustCompile(`(\d+)(?: par |×)(\d+)`)
	firstTerm       = regexp.MustCompile(`^[+-]?[^+-]+`)
)

func TestAntecedentIsTheSolution(t *testing.T) {
	set := newSet(t)
	r := newRand(11)
	for range iterations {
		q, err := set.Generate(r, "calculate_antecedent", question.Options{})
		require.NoError(t, err)

		var eq, rhs string
		if m := antecedentFn.FindStringSubmatch(q.Text); m != nil {
			rhs, eq = m[1], m[2]
		} else {
			m := antecedentEq.FindStringSubmatch(q.Text)
			require.NotNil(t, m, q.Text)
			eq, rhs = m[1], m[2]
		}
		coef := parsePolynomial(t, eq)
		c := atoi(t, rhs)
		x, ok := q.Correct().Int()
		require.True(t, ok)
		assert.Equal(t, c, coef[1]*x+coef[0], q.Text)
	}
}

func TestImageIsTheValue(t *testing.T) {
	set := newSet(t)
	r := newRand(12)
	for range iterations {
		q, err := set.Generate(r, "calculate_image", question.Options{})
		require.NoError(t, err)

		in := imageInput.FindStringSubmatch(q.Text)
		require.NotNil(t, in, q.Text)
		x := atoi(t, in[1]+in[2])
		eq := imageEquation.FindStringSubmatch(q.Text)
		require.NotNil(t, eq, q.Text)
		coef := parsePolynomial(t, eq[1])

		got, ok := q.Correct().Int()
		require.True(t, ok)
		assert.Equal(t, coef[2]*x*x+coef[1]*x+coef[0], got, q.Text)
	}
}

func TestDiscriminantIsBSquaredMinus4AC(t *testing.T) {
	set := newSet(t)
	r := newRand(13)
	for range iterations {
		q, err := set.Generate(r, "calculate_discriminant", question.Options{})
		require.NoError(t, err)
		m := quadraticEq.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		coef := parsePolynomial(t, m[1])
		got, _ := q.Correct().Int()
		assert.Equal(t, coef[1]*coef[1]-4*coef[2]*coef[0], got, q.Text)
	}
}

func TestFactorisationExpandsBack(t *testing.T) {
	set := newSet(t)
	r := newRand(14)
	for range iterations {
		q, err := set.Generate(r, "give_factorisation_form", question.Options{})
		require.NoError(t, err)
		m := factorEquation.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		want := parsePolynomial(t, m[1])

		canonical := map[[3]int]bool{}
		for i, answer := range q.Answers {
			f := factoredForm.FindStringSubmatch(answer.String())
			require.NotNil(t, f, answer.String())
			a := 1
			switch f[1] {
			case "":
			case "-":
				a = -1
			default:
				a = atoi(t, f[1])
			}
			r1, r2 := -atoi(t, f[2]), -atoi(t, f[3])
			key := [3]int{a, min(r1, r2), max(r1, r2)}
			assert.False(t, canonical[key], "same factorisation twice: %v", q.Answers)
			canonical[key] = true

			expands := a == want[2] && -a*(r1+r2) == want[1] && a*r1*r2 == want[0]
			assert.Equal(t, i == q.CorrectIndex, expands, "%s -> %s", q.Text, answer)
		}
	}
}

func TestProductAnswer(t *testing.T) {
	set := newSet(t)
	r := newRand(15)
	elevens := 0
	for range 600 {
		q, err := set.Generate(r, "calcul_product", question.Options{})
		require.NoError(t, err)
		m := productOperands.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		n1, n2 := atoi(t, m[1]), atoi(t, m[2])
		got, _ := q.Correct().Int()
		assert.Equal(t, n1*n2, got)
		if n1 == 11 {
			elevens++
			assert.GreaterOrEqual(t, n2, 12)
		}
	}
	assert.InDelta(t, 100, elevens, 40)
}

func TestProductUsesTimesSign(t *testing.T) {
	set := newSet(t)
	r := newRand(16)
	for range 100 {
		q, err := set.Generate(r, "calcul_product", question.Options{LaTeX: true})
		require.NoError(t, err)
		assert.NotContains(t, q.Text, "×")
	}
}

func parsePolynomial(t *testing.T, s string) map[int]int {
	t.Helper()
	coef := map[int]int{}
	for _, term := range regexp.MustCompile(`[+-]?[^+-]+`).FindAllString(s, -1) {
		power := 0
		switch {
		case strings.HasSuffix(term, "x²"):
			power, term = 2, strings.TrimSuffix(term, "x²")
		case strings.HasSuffix(term, "x"):
			power, term = 1, strings.TrimSuffix(term, "x")
		}
		switch term {
		case "", "+":
			coef[power] = 1
		case "-":
			coef[power] = -1
		default:
			coef[power] = atoi(t, term)
		}
	}
	return coef
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err, s)
	return n
}
