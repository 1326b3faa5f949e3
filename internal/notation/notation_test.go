package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

func TestSentenceFill(t *testing.T) {
	s := Sentence("Quelle est la solution de {l}{equation}={c}{l} ?")
	assert.Equal(t, "Quelle est la solution de 2x+3=7 ?", s.Fill(Plain, "equation", "2x+3", "c", "7"))
	assert.Equal(t, "Quelle est la solution de $2x+3=7$ ?", s.Fill(LaTeX, "equation", "2x+3", "c", "7"))
}

func TestPower(t *testing.T) {
	assert.Equal(t, "x²", Plain.Power("x", 2))
	assert.Equal(t, "x¹²", Plain.Power("x", 12))
	assert.Equal(t, "x^2", LaTeX.Power("x", 2))
	assert.Equal(t, "x^{12}", LaTeX.Power("x", 12))
}

func TestRadians(t *testing.T) {
	plain := map[int]string{
		0:    "0",
		30:   "π/6",
		45:   "π/4",
		-45:  "-π/4",
		90:   "π/2",
		150:  "5π/6",
		180:  "π",
		270:  "3π/2",
		360:  "2π",
		-720: "-4π",
		7:    "7π/180",
	}
	for deg, want := range plain {
		assert.Equal(t, want, Plain.Radians(deg), "deg=%d", deg)
	}
	assert.Equal(t, `-\frac{5\pi}{18}`, LaTeX.Radians(-50))
	assert.Equal(t, `\frac{\pi}{3}`, LaTeX.Radians(60))
	assert.Equal(t, `\pi`, LaTeX.Radians(180))
}

func TestRadiansRoundTrip(t *testing.T) {
	for _, n := range []Notation{Plain, LaTeX} {
		for deg := -720; deg <= 720; deg += 15 {
			got, err := n.ParseRadians(n.Radians(deg))
			require.NoError(t, err, "%s deg=%d", n, deg)
			assert.Equal(t, deg, got)
		}
	}
}

func TestParseRadiansRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "pi", "3/4", "π/0", "xπ"} {
		_, err := Plain.ParseRadians(s)
		assert.ErrorIs(t, err, mathutil.ErrConfiguration, s)
	}
}

func TestDegreeStrings(t *testing.T) {
	assert.Equal(t, "-90°", Plain.Degrees(-90))
	assert.Equal(t, `45^\circ`, LaTeX.Degrees(45))

	shifted, err := Plain.AddDegrees("30°", 360)
	require.NoError(t, err)
	assert.Equal(t, "390°", shifted)

	rad, err := LaTeX.DegreesToRadians(`150^\circ`)
	require.NoError(t, err)
	assert.Equal(t, `\frac{5\pi}{6}`, rad)

	_, err = Plain.ParseDegrees("45")
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)
	_, err = Plain.DegreesToRadians("abc°")
	assert.ErrorIs(t, err, mathutil.ErrConfiguration)
}
