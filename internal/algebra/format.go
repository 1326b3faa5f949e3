package algebra

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gokatarajesh/qcm-math/internal/notation"
)

// FormatValue renders one signed term: "+3x", "-x", "+5". A zero
// coefficient renders nothing.
func FormatValue(coefficient int, variable string) string {
	if coefficient == 0 {
		return ""
	}
	sign := "+"
	if coefficient < 0 {
		sign = "-"
		coefficient = -coefficient
	}
	if coefficient == 1 && variable != "" {
		return sign + variable
	}
	return sign + strconv.Itoa(coefficient) + variable
}

// FormatEquation renders the polynomial whose coefficients are given from
// the highest power down to the constant. Zero terms are dropped; an all
// zero polynomial is "0". With shuffle the terms come out in random order.
func FormatEquation(n notation.Notation, r *rand.Rand, shuffle bool, coefficients ...int) string {
	terms := make([]string, 0, len(coefficients))
	for i, c := range coefficients {
		term := FormatValue(c, variable(n, len(coefficients)-1-i))
		if term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	if shuffle {
		r.Shuffle(len(terms), func(i, j int) { terms[i], terms[j] = terms[j], terms[i] })
	}
	return strings.TrimPrefix(strings.Join(terms, ""), "+")
}

func variable(n notation.Notation, exp int) string {
	switch exp {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return n.Power("x", exp)
	}
}

// leadingFactor renders a coefficient placed in front of parentheses.
func leadingFactor(a int) string {
	switch a {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return strconv.Itoa(a)
	}
}
