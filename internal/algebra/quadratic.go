package algebra

import (
	"math/rand/v2"
	"slices"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

var factorisationSentences = []notation.Sentence{
	"Quelle est la forme factorisée du polynôme {l}y={equation}{l} ?",
	"Donner sous forme de produit {l}f(x)={equation}{l}.",
}

var discriminantSentences = []notation.Sentence{
	"Combien vaut le discriminant de {l}{equation}=0{l} ?",
	"Calcule {l}{delta}{l} pour l'équation {l}{equation}=0{l}.",
	"Quelle est la valeur de {l}{delta}{l} dans l'équation {l}{equation}=0{l} ?",
}

// factored is a(x-r1)(x-r2).
type factored struct {
	a, r1, r2 int
}

// key ignores the order of the roots so that (x-1)(x+4) and (x+4)(x-1)
// are the same answer.
func (f factored) key() [3]int {
	lo, hi := min(f.r1, f.r2), max(f.r1, f.r2)
	return [3]int{f.a, lo, hi}
}

func (f factored) render(r *rand.Rand) string {
	r1, r2 := f.r1, f.r2
	if r.IntN(2) == 0 {
		r1, r2 = r2, r1
	}
	return leadingFactor(f.a) + "(x" + FormatValue(-r1, "") + ")(x" + FormatValue(-r2, "") + ")"
}

// factorisation expands a(x-r1)(x-r2) and asks for the factored form.
// Roots are non zero so every factor reads (x±n).
func (g *generator) factorisation(env question.Env) (question.Question, error) {
	r := env.Rand
	a, err := mathutil.RandIntExcluding(r, g.cfg.FactorLeading, 0)
	if err != nil {
		return question.Question{}, err
	}
	r1, err := mathutil.RandIntExcluding(r, g.cfg.FactorSmallRoot, 0)
	if err != nil {
		return question.Question{}, err
	}
	// The large root avoids the small range and its opposite so that no
	// sign flip of the roots lands back on the answer.
	excluded := []int{0}
	for _, v := range g.cfg.FactorSmallRoot.Values() {
		excluded = append(excluded, v, -v)
	}
	r2, err := mathutil.RandIntExcluding(r, g.cfg.FactorLargeRoot, excluded...)
	if err != nil {
		return question.Question{}, err
	}
	b := -(r1 + r2) * a
	c := r1 * r2 * a

	answer := factored{a, r1, r2}
	candidates := []factored{
		{a, -r1, -r2},
		{-a, r1, r2},
		{a, -r1, r2},
		{a, r1, -r2},
		{-a, -r1, -r2},
	}
	if fake := b / (a * r1); fake != 0 {
		candidates = append(candidates, factored{a, r1, fake})
	}

	seen := [][3]int{answer.key()}
	options := []factored{answer}
	for _, f := range mathutil.Shuffle(r, candidates) {
		if len(options) == 4 {
			break
		}
		if slices.Contains(seen, f.key()) {
			continue
		}
		seen = append(seen, f.key())
		options = append(options, f)
	}

	rendered := make([]question.Value, len(options))
	for i, f := range options {
		rendered[i] = env.Math(f.render(r))
	}
	correct := rendered[0]

	equation := FormatEquation(env.Notation, r, g.cfg.ShuffleEquations, a, b, c)
	text := env.Sentence(factorisationSentences, "equation", equation)
	return question.FromValues(text, mathutil.Shuffle(r, rendered), correct), nil
}

// discriminant asks for b²-4ac.
func (g *generator) discriminant(env question.Env) (question.Question, error) {
	r := env.Rand
	a, err := mathutil.RandIntExcluding(r, g.cfg.DiscriminantA, 0)
	if err != nil {
		return question.Question{}, err
	}
	b, err := mathutil.RandIntExcluding(r, g.cfg.DiscriminantB, 0)
	if err != nil {
		return question.Question{}, err
	}
	c, err := mathutil.RandIntExcluding(r, g.cfg.DiscriminantC, 0)
	if err != nil {
		return question.Question{}, err
	}
	answer := b*b - 4*a*c

	values := []int{answer}
	// Swapped coefficients, a sign slip and b left unsquared.
	for _, trap := range mathutil.Shuffle(r, []int{a*a - 4*b*c, b*b + 4*a*c, 2*b - 4*a*c}) {
		if len(values) < 4 && !slices.Contains(values, trap) {
			values = append(values, trap)
		}
	}
	spread := 4 * max(mathutil.Abs(g.cfg.DiscriminantA.Min), mathutil.Abs(g.cfg.DiscriminantA.Max)) *
		max(mathutil.Abs(g.cfg.DiscriminantC.Min), mathutil.Abs(g.cfg.DiscriminantC.Max))
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, mathutil.Span(answer-spread, answer+spread), 4, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	equation := FormatEquation(env.Notation, r, g.cfg.ShuffleEquations, a, b, c)
	text := env.Sentence(discriminantSentences, "equation", equation, "delta", env.Notation.Delta())
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(answer)), nil
}
