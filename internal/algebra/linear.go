package algebra

import (
	"slices"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

var antecedentSentences = []notation.Sentence{
	"Quelle est la valeur de {l}x{l} dans {l}{equation}={c}{l} ?",
	"Quelle est la solution de {l}{equation}={c}{l} ?",
	"Donner l'antécédent de {l}{c}{l} avec {l}f(x)={equation}{l}.",
}

var imageSentences = []notation.Sentence{
	"Combien vaut {l}g({x}){l} avec {l}g(x)={equation}{l} ?",
	"Calcule l'image de {l}{x}{l} par la fonction {l}y={equation}{l}.",
	"Donner l'image de {l}{x}{l} avec {l}f(x)={equation}{l}.",
}

// antecedent asks for x in ax+b=c. c is a multiple of a so the answer is
// always an integer.
func (g *generator) antecedent(env question.Env) (question.Question, error) {
	r := env.Rand
	a, err := mathutil.RandIntExcluding(r, g.cfg.AntecedentCoefficient, 0)
	if err != nil {
		return question.Question{}, err
	}
	x, err := mathutil.RandIntExcluding(r, g.cfg.AntecedentSolution, 0)
	if err != nil {
		return question.Question{}, err
	}
	k, err := mathutil.RandIntExcluding(r, g.cfg.AntecedentMultiplier, 0)
	if err != nil {
		return question.Question{}, err
	}
	c := k * a
	b := c - a*x

	values := []int{x}
	// Moving b to the wrong side.
	if slip := -(c + b) / a; !slices.Contains(values, slip) {
		values = append(values, slip)
	}
	// Computing the image of c instead of its antecedent.
	if image := a*c + b; !slices.Contains(values, image) {
		values = append(values, image)
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, g.cfg.AntecedentSolution, 2, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	equation := FormatEquation(env.Notation, r, g.cfg.ShuffleEquations, a, b)
	text := env.Sentence(antecedentSentences, "equation", equation, "c", strconv.Itoa(c))
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(x)), nil
}

// image asks for f(x) with f of degree one or two.
func (g *generator) image(env question.Env) (question.Question, error) {
	r := env.Rand
	a := 0
	if r.IntN(2) == 0 {
		var err error
		if a, err = mathutil.RandIntExcluding(r, g.cfg.ImageQuadratic, 0); err != nil {
			return question.Question{}, err
		}
	}
	b, err := mathutil.RandIntExcluding(r, g.cfg.ImageLinear, 0)
	if err != nil {
		return question.Question{}, err
	}
	c := mathutil.RandInt(r, g.cfg.ImageConstant)
	x := mathutil.RandInt(r, g.cfg.ImageInput)

	f := func(t int) int { return a*t*t + b*t + c }
	answer := f(x)

	lo, hi := answer, answer
	for _, t := range g.cfg.ImageInput.Values() {
		lo, hi = min(lo, f(t)), max(hi, f(t))
	}

	values := []int{answer}
	// Sign error on x, then x² read as 2x.
	for _, trap := range []int{f(-x), 2*a*x + b*x + c} {
		if !slices.Contains(values, trap) {
			values = append(values, trap)
		}
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, mathutil.Span(lo, hi), 4, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	equation := FormatEquation(env.Notation, r, g.cfg.ShuffleEquations, a, b, c)
	text := env.Sentence(imageSentences, "equation", equation, "x", strconv.Itoa(x))
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(answer)), nil
}
