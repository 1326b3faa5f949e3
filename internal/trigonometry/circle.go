package trigonometry

import (
	"fmt"
	"slices"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const valueAttempts = 200

var valueSentences = []notation.Sentence{
	"Quelle est la valeur de {l}{function}({angle}){l} ?",
	"Que vaut {l}{function}({angle}){l} ?",
	"Sur le cercle trigonométrique, combien vaut {l}{function}({angle}){l} ?",
}

var sameValueSentences = []notation.Sentence{
	"Les angles {l}{first}{l} et {l}{second}{l} ont-ils le même point image sur le cercle trigonométrique ?",
	"Sur le cercle trigonométrique, {l}{first}{l} et {l}{second}{l} désignent-ils le même point ?",
	"{l}{first}{l} et {l}{second}{l} représentent-ils le même angle orienté ?",
}

var convertSentences = []notation.Sentence{
	"Que vaut {l}{value}{l} en {unit} ?",
	"Convertis {l}{value}{l} en {unit}.",
	"Combien de {unit} représente {l}{value}{l} ?",
	"Quelle est la valeur exacte en {unit} de {l}{value}{l} ?",
}

// angle shows an angle written in degrees either as is or in radians, at
// random.
func angle(env question.Env, deg string) (string, error) {
	if env.Rand.IntN(2) == 0 {
		return env.Notation.DegreesToRadians(deg)
	}
	return deg, nil
}

func (g *generator) foundValue(env question.Env) (question.Question, error) {
	r := env.Rand
	fn := mathutil.Pick(r, []Function{Cosine, Sine})
	deg := mathutil.Pick(r, g.angles)
	v, err := Value(fn, deg)
	if err != nil {
		return question.Question{}, err
	}
	correct := v.Render(env.Notation)

	rendered := []string{correct}
	for range valueAttempts {
		if len(rendered) == 4 {
			break
		}
		other, err := Value(fn, mathutil.Pick(r, g.angles))
		if err != nil {
			return question.Question{}, err
		}
		if s := other.Render(env.Notation); !slices.Contains(rendered, s) {
			rendered = append(rendered, s)
		}
	}
	if len(rendered) < 2 {
		return question.Question{}, fmt.Errorf("%w: every angle has the same %s", mathutil.ErrConfiguration, fn.Symbol(notation.Plain))
	}

	values := make([]question.Value, len(rendered))
	for i, s := range rendered {
		values[i] = env.Math(s)
	}
	shown, err := angle(env, env.Notation.Degrees(deg))
	if err != nil {
		return question.Question{}, err
	}
	text := env.Sentence(valueSentences, "function", fn.Symbol(env.Notation), "angle", shown)
	return question.FromValues(text, mathutil.Shuffle(r, values), env.Math(correct)), nil
}

// Coterminal reports whether two angles in degrees end at the same point
// of the unit circle.
func Coterminal(a, b int) bool {
	return (a-b)%360 == 0
}

// sameValue asks whether two angles are the same point of the circle. A
// true pair is one full turn apart; a false pair is never coterminal.
func (g *generator) sameValue(env question.Env) (question.Question, error) {
	r := env.Rand
	n := env.Notation
	first := mathutil.Pick(r, g.angles)
	truth := r.IntN(2) == 0

	a := n.Degrees(first)
	var b string
	if truth {
		var err error
		if b, err = n.AddDegrees(a, mathutil.Pick(r, []int{-360, 360})); err != nil {
			return question.Question{}, err
		}
	} else {
		var others []int
		for _, other := range g.angles {
			if !Coterminal(other, first) {
				others = append(others, other)
			}
		}
		if len(others) == 0 {
			return question.Question{}, fmt.Errorf("%w: every angle is coterminal with %d°", mathutil.ErrConfiguration, first)
		}
		b = n.Degrees(mathutil.Pick(r, others))
	}
	if r.IntN(2) == 0 {
		a, b = b, a
	}

	shownA, err := angle(env, a)
	if err != nil {
		return question.Question{}, err
	}
	shownB, err := angle(env, b)
	if err != nil {
		return question.Question{}, err
	}
	text := env.Sentence(sameValueSentences, "first", shownA, "second", shownB)
	return question.FromValues(text,
		[]question.Value{question.Bool(true), question.Bool(false)}, question.Bool(truth)), nil
}

// convert shows one angle and asks for it in the other unit. The four
// options are distinct angles of the same range.
func (g *generator) convert(env question.Env) (question.Question, error) {
	r := env.Rand
	n := env.Notation
	picked := mathutil.Shuffle(r, g.conv)[:4]
	deg := picked[0]

	toRadians := r.IntN(2) == 0
	shown, unit := n.Radians(deg), "degrés"
	render := n.Degrees
	if toRadians {
		shown, unit = n.Degrees(deg), "radians"
		render = n.Radians
	}

	values := make([]question.Value, len(picked))
	for i, a := range picked {
		values[i] = env.Math(render(a))
	}
	text := env.Sentence(convertSentences, "value", shown, "unit", unit)
	return question.FromValues(text, mathutil.Shuffle(r, values), env.Math(render(deg))), nil
}
