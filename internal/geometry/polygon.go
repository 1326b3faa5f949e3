package geometry

import (
	"slices"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

var sidesSentences = []notation.Sentence{
	"Combien de côtés possède un {shape} ?",
	"Un {shape} est un polygone à combien de côtés ?",
	"Quel est le nombre de côtés d'un {shape} ?",
}

var angleSumSentences = []notation.Sentence{
	"Quelle est la somme des angles d'un {shape} ?",
	"Que vaut la somme des angles intérieurs d'un {shape} ?",
	"Combien vaut l'addition des angles d'un {shape} ?",
}

func (g *generator) howManySides(env question.Env) (question.Question, error) {
	r := env.Rand
	shapes := mathutil.Shuffle(r, g.cfg.Polygons)
	answer := shapes[0]

	values := []int{answer.Sides}
	for _, s := range shapes[1:] {
		if len(values) < 4 && !slices.Contains(values, s.Sides) {
			values = append(values, s.Sides)
		}
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, mathutil.Span(3, slices.Max(values)), 1, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	text := env.Sentence(sidesSentences, "shape", answer.Name)
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(answer.Sides)), nil
}

// anglesSum answers in degrees or radians. Distractors are the sums of the
// other shapes, in either unit.
func (g *generator) anglesSum(env question.Env) (question.Question, error) {
	r := env.Rand
	n := env.Notation
	shapes := mathutil.Shuffle(r, g.cfg.AngleShapes)
	answer := shapes[0]

	render := func(deg int) string {
		if r.IntN(2) == 0 {
			return n.Radians(deg)
		}
		return n.Degrees(deg)
	}

	correct := render(answer.AngleSum())
	rendered := []string{correct}
	var sums []int
	for _, s := range shapes[1:] {
		if s.AngleSum() != answer.AngleSum() && !slices.Contains(sums, s.AngleSum()) {
			sums = append(sums, s.AngleSum())
		}
	}
	var candidates []string
	for _, sum := range sums {
		candidates = append(candidates, n.Degrees(sum), n.Radians(sum))
	}
	for _, c := range mathutil.Shuffle(r, candidates) {
		if len(rendered) < 4 && !slices.Contains(rendered, c) {
			rendered = append(rendered, c)
		}
	}

	values := make([]question.Value, len(rendered))
	for i, s := range rendered {
		values[i] = env.Math(s)
	}
	text := env.Sentence(angleSumSentences, "shape", answer.Name)
	return question.FromValues(text, mathutil.Shuffle(r, values), env.Math(correct)), nil
}
