package trigonometry

import (
	"strings"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

// Sides of a right triangle, seen from one of its acute angles.
const (
	Adjacent   = "adjacent"
	Opposite   = "opposé"
	Hypotenuse = "hypoténuse"
)

// Ratio defines a trigonometric function as a quotient of two sides.
type Ratio struct {
	Name        string
	Article     string
	Numerator   string
	Denominator string
}

// Ratios are the SOH CAH TOA definitions.
var Ratios = []Ratio{
	{Name: "cosinus", Article: "le", Numerator: Adjacent, Denominator: Hypotenuse},
	{Name: "sinus", Article: "le", Numerator: Opposite, Denominator: Hypotenuse},
	{Name: "tangente", Article: "la", Numerator: Opposite, Denominator: Adjacent},
}

var sidePhrases = map[string]string{
	Adjacent:   "le côté adjacent",
	Opposite:   "le côté opposé",
	Hypotenuse: "l'hypoténuse",
}

var formulaSentences = []notation.Sentence{
	"Dans un triangle rectangle, {article} {function} d'un angle est-il égal au rapport entre {numerator} et {denominator} ?",
	"{Article} {function} d'un angle aigu vaut-il {l}{fraction}{l} ?",
	"Est-il vrai que {article} {function} s'obtient en divisant {numerator} par {denominator} ?",
}

// formula asks whether a side ratio defines a function. False statements
// use any other ordered pair of sides.
func (g *generator) formula(env question.Env) (question.Question, error) {
	r := env.Rand
	n := env.Notation
	ratio := mathutil.Pick(r, Ratios)
	truth := r.IntN(2) == 0

	num, den := ratio.Numerator, ratio.Denominator
	if !truth {
		var pairs [][2]string
		for _, a := range []string{Adjacent, Opposite, Hypotenuse} {
			for _, b := range []string{Adjacent, Opposite, Hypotenuse} {
				if a != b && (a != num || b != den) {
					pairs = append(pairs, [2]string{a, b})
				}
			}
		}
		p := mathutil.Pick(r, pairs)
		num, den = p[0], p[1]
	}

	text := env.Sentence(formulaSentences,
		"article", ratio.Article,
		"Article", strings.ToUpper(ratio.Article[:1])+ratio.Article[1:],
		"function", ratio.Name,
		"numerator", sidePhrases[num],
		"denominator", sidePhrases[den],
		"fraction", n.Frac(n.Text(num), n.Text(den)),
	)
	return question.FromValues(text,
		[]question.Value{question.Bool(true), question.Bool(false)}, question.Bool(truth)), nil
}
