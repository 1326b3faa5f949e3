package notation

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

// halfTurn is 180 = 2·2·3·3·5, the denominator every degree value is
// reduced against when written in radians.
var halfTurn = []int{2, 2, 3, 3, 5}

// Degrees renders an angle in degrees.
func (n Notation) Degrees(deg int) string {
	return strconv.Itoa(deg) + n.DegreeSuffix()
}

// ParseDegrees reads back an angle written by Degrees.
func (n Notation) ParseDegrees(s string) (int, error) {
	raw, ok := strings.CutSuffix(strings.TrimSpace(s), n.DegreeSuffix())
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s angle in degrees", mathutil.ErrConfiguration, s, n)
	}
	deg, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %s angle in degrees", mathutil.ErrConfiguration, s, n)
	}
	return deg, nil
}

// AddDegrees shifts an angle written in degrees by delta.
func (n Notation) AddDegrees(s string, delta int) (string, error) {
	deg, err := n.ParseDegrees(s)
	if err != nil {
		return "", err
	}
	return n.Degrees(deg + delta), nil
}

// DegreesToRadians converts an angle written in degrees to its exact
// radian form.
func (n Notation) DegreesToRadians(s string) (string, error) {
	deg, err := n.ParseDegrees(s)
	if err != nil {
		return "", err
	}
	return n.Radians(deg), nil
}

// Radians renders deg·π/180 as a reduced fraction of π: "π", "2π",
// "-π/4", "5π/6", or \frac forms in LaTeX. Zero is "0".
func (n Notation) Radians(deg int) string {
	if deg == 0 {
		return "0"
	}
	den := slices.Clone(halfTurn)
	num := 1
	for _, f := range mathutil.PrimeFactors(deg) {
		if i := slices.Index(den, f); i >= 0 {
			den = slices.Delete(den, i, i+1)
			continue
		}
		num *= f
	}
	q := 1
	for _, f := range den {
		q *= f
	}

	sign := ""
	if num < 0 {
		sign = "-"
		num = -num
	}
	top := n.Pi()
	if num != 1 {
		top = strconv.Itoa(num) + top
	}
	if q == 1 {
		return sign + top
	}
	return sign + n.Frac(top, strconv.Itoa(q))
}

// ParseRadians reads back an angle written by Radians and returns it in
// degrees.
func (n Notation) ParseRadians(s string) (int, error) {
	bad := fmt.Errorf("%w: %q is not a %s angle in radians", mathutil.ErrConfiguration, s, n)
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	sign := 1
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign = -1
		s = rest
	}

	top, bottom := s, "1"
	if n.latex {
		if rest, ok := strings.CutPrefix(s, `\frac{`); ok {
			var found bool
			top, bottom, found = strings.Cut(strings.TrimSuffix(rest, "}"), "}{")
			if !found {
				return 0, bad
			}
		}
	} else if before, after, found := strings.Cut(s, "/"); found {
		top, bottom = before, after
	}

	coef, ok := strings.CutSuffix(top, n.Pi())
	if !ok {
		return 0, bad
	}
	k := 1
	if coef != "" {
		v, err := strconv.Atoi(coef)
		if err != nil {
			return 0, bad
		}
		k = v
	}
	q, err := strconv.Atoi(bottom)
	if err != nil || q <= 0 || (180*k)%q != 0 {
		return 0, bad
	}
	return sign * 180 * k / q, nil
}
