package trigonometry

import (
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const iterations = 300

var (
	functionCall = regexp.MustCompile(`(cos|sin)\(([^)]+)\)`)
	anglePair    = regexp.MustCompile(`(\S+) et (\S+)`)
)

func generate(t *testing.T, kind string, opts question.Options) []question.Question {
	t.Helper()
	set, err := New(DefaultConfig())
	require.NoError(t, err)
	r := rand.New(rand.NewPCG(17, uint64(len(kind))))
	out := make([]question.Question, 0, iterations)
	for range iterations {
		q, err := set.Generate(r, kind, opts)
		require.NoError(t, err, kind)
		out = append(out, q)
	}
	return out
}

func parseAngle(t *testing.T, n notation.Notation, s string) int {
	t.Helper()
	if deg, err := n.ParseDegrees(s); err == nil {
		return deg
	}
	deg, err := n.ParseRadians(s)
	require.NoError(t, err, s)
	return deg
}

func TestExtendedAngles(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.ExtendedAngles(mathutil.Span(0, 1))
	assert.Equal(t, []int{0, 30, 45, 60, 90}, got)

	full := cfg.ExtendedAngles(cfg.Turns)
	assert.Equal(t, -360, full[0])
	assert.Equal(t, 360, full[len(full)-1])
	assert.Contains(t, full, 330)
}

func TestValueMatchesMath(t *testing.T) {
	for deg := -720; deg <= 720; deg += 15 {
		for _, fn := range []Function{Cosine, Sine} {
			v, err := Value(fn, deg)
			if deg%30 != 0 && deg%45 != 0 {
				assert.ErrorIs(t, err, mathutil.ErrConfiguration)
				continue
			}
			require.NoError(t, err)
			rad := float64(deg) * math.Pi / 180
			want := math.Cos(rad)
			if fn == Sine {
				want = math.Sin(rad)
			}
			assert.InDelta(t, want, v.Float(), 1e-12, "fn=%d deg=%d", fn, deg)
		}
	}
}

func TestRender(t *testing.T) {
	v, err := Value(Cosine, 150)
	require.NoError(t, err)
	assert.Equal(t, "-√(3)/2", v.Render(notation.Plain))
	assert.Equal(t, `-\frac{\sqrt{3}}{2}`, v.Render(notation.LaTeX))

	v, err = Value(Sine, 180)
	require.NoError(t, err)
	assert.Equal(t, "0", v.Render(notation.Plain))
}

func TestFoundValue(t *testing.T) {
	rendered := map[string]float64{}
	for _, deg := range DefaultConfig().ExtendedAngles(DefaultConfig().Turns) {
		v, err := Value(Cosine, deg)
		require.NoError(t, err)
		rendered[v.Render(notation.Plain)] = v.Float()
	}

	for _, q := range generate(t, "found_value", question.Options{}) {
		m := functionCall.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		rad := float64(parseAngle(t, notation.Plain, m[2])) * math.Pi / 180
		want := math.Cos(rad)
		if m[1] == "sin" {
			want = math.Sin(rad)
		}
		got, ok := rendered[q.Correct().String()]
		require.True(t, ok, q.Correct().String())
		assert.InDelta(t, want, got, 1e-12, q.Text)
		assert.Len(t, q.Answers, 4)
	}
}

func TestSameValueNeverOffersCoterminalFalsePairs(t *testing.T) {
	for _, q := range generate(t, "is_the_same_value", question.Options{}) {
		m := anglePair.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		a, b := parseAngle(t, notation.Plain, m[1]), parseAngle(t, notation.Plain, m[2])
		truth, ok := q.Correct().Bool()
		require.True(t, ok)
		assert.Equal(t, Coterminal(a, b), truth, q.Text)
		if truth {
			assert.Equal(t, 360, abs(a-b))
		}
	}
}

func TestSameValueShowsDegreesAndRadians(t *testing.T) {
	degrees, radians := 0, 0
	for _, q := range generate(t, "is_the_same_value", question.Options{}) {
		m := anglePair.FindStringSubmatch(q.Text)
		require.NotNil(t, m, q.Text)
		for _, shown := range m[1:] {
			if strings.HasSuffix(shown, "°") {
				degrees++
			} else {
				radians++
			}
		}
	}
	assert.Positive(t, degrees)
	assert.Positive(t, radians)
}

func TestConvert(t *testing.T) {
	for _, latex := range []bool{false, true} {
		n := notation.For(latex)
		for _, q := range generate(t, "convert_value_into_degree_or_radian", question.Options{LaTeX: latex}) {
			shown := plainAngle(q.Text)
			if latex {
				shown = strings.Split(q.Text, "$")[1]
			}
			require.NotEmpty(t, shown, q.Text)
			answer := strings.Trim(q.Correct().String(), "$")
			assert.Equal(t, parseAngle(t, n, shown), parseAngle(t, n, answer), q.Text)
			assert.Len(t, q.Answers, 4)
		}
	}
}

func TestFormula(t *testing.T) {
	for _, q := range generate(t, "trigo_formula", question.Options{}) {
		var ratio Ratio
		for _, r := range Ratios {
			if strings.Contains(q.Text, " "+r.Name+" ") {
				ratio = r
			}
		}
		require.NotEmpty(t, ratio.Name, q.Text)
		statement := sidePhrases[ratio.Numerator] + " et " + sidePhrases[ratio.Denominator]
		division := sidePhrases[ratio.Numerator] + " par " + sidePhrases[ratio.Denominator]
		fraction := ratio.Numerator + "/" + ratio.Denominator
		claimsTrue := strings.Contains(q.Text, statement) || strings.Contains(q.Text, division) ||
			strings.Contains(q.Text, " "+fraction+" ")
		truth, _ := q.Correct().Bool()
		assert.Equal(t, claimsTrue, truth, q.Text)
	}
}

func TestNewRejectsInexactAngles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseAngles = []int{0, 20}
	_, err := New(cfg)
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)
}

// plainAngle extracts the angle of a plain conversion sentence.
func plainAngle(text string) string {
	for _, word := range strings.Fields(text) {
		word = strings.TrimRight(word, ".?")
		if strings.HasSuffix(word, "°") || strings.Contains(word, "π") || word == "0" {
			return word
		}
	}
	return ""
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
