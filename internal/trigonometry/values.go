package trigonometry

import (
	"fmt"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
)

// Function is a unit circle coordinate.
type Function int

const (
	Cosine Function = iota
	Sine
)

func (f Function) Symbol(n notation.Notation) string {
	if f == Sine {
		return n.Sin()
	}
	return n.Cos()
}

// Exact is a value of cos or sin at a multiple of 30° or 45°: sign times
// one of 0, 1/2, √2/2, √3/2, 1.
type Exact struct {
	sign  int
	level int
}

// Value returns the exact value of f at deg.
func Value(f Function, deg int) (Exact, error) {
	if f == Sine {
		deg = 90 - deg
	}
	d := ((deg % 360) + 360) % 360
	ref := d
	switch {
	case d > 270:
		ref = 360 - d
	case d > 180:
		ref = d - 180
	case d > 90:
		ref = 180 - d
	}
	levels := map[int]int{90: 0, 60: 1, 45: 2, 30: 3, 0: 4}
	level, ok := levels[ref]
	if !ok {
		return Exact{}, fmt.Errorf("%w: no exact value at %d°", mathutil.ErrConfiguration, deg)
	}
	sign := 1
	if d > 90 && d < 270 {
		sign = -1
	}
	if level == 0 {
		sign = 0
	}
	return Exact{sign: sign, level: level}, nil
}

// Render writes the value: "0", "1/2", "-√(3)/2", "\frac{\sqrt{2}}{2}".
func (e Exact) Render(n notation.Notation) string {
	var s string
	switch e.level {
	case 0:
		return "0"
	case 1:
		s = n.Frac("1", "2")
	case 2:
		s = n.Frac(n.Sqrt("2"), "2")
	case 3:
		s = n.Frac(n.Sqrt("3"), "2")
	default:
		s = "1"
	}
	if e.sign < 0 {
		return "-" + s
	}
	return s
}

// Float is the numeric value, for checks.
func (e Exact) Float() float64 {
	magnitudes := []float64{0, 0.5, 0.7071067811865476, 0.8660254037844386, 1}
	return float64(e.sign) * magnitudes[e.level]
}
