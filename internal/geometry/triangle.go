package geometry

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

// Triangle natures, as displayed.
const (
	Right       = "rectangle"
	Isosceles   = "isocèle"
	Equilateral = "équilatéral"
	Scalene     = "quelconque"
)

const triangleAttempts = 100

var natures = []string{Right, Isosceles, Equilateral, Scalene}

var triangleSentences = []notation.Sentence{
	"Quelle est la nature d'un triangle de côtés {l}{a}{l}, {l}{b}{l} et {l}{c}{l} ?",
	"Un triangle mesure {l}{a}{l}, {l}{b}{l} et {l}{c}{l} de côté. Quel type de triangle est-ce ?",
	"Les côtés d'un triangle valent {l}{a}{l}, {l}{b}{l} et {l}{c}{l}. Ce triangle est :",
}

// Nature classifies a triangle by its side lengths. Sides that break the
// triangle inequality are reported as an error.
func Nature(a, b, c int) (string, error) {
	s := []int{a, b, c}
	slices.Sort(s)
	if s[0] <= 0 || s[0]+s[1] <= s[2] {
		return "", fmt.Errorf("%w: %d, %d and %d do not form a triangle", mathutil.ErrConfiguration, a, b, c)
	}
	switch {
	case s[0] == s[2]:
		return Equilateral, nil
	case s[0] == s[1] || s[1] == s[2]:
		return Isosceles, nil
	case s[0]*s[0]+s[1]*s[1] == s[2]*s[2]:
		return Right, nil
	default:
		return Scalene, nil
	}
}

func (g *generator) triangleNature(env question.Env) (question.Question, error) {
	r := env.Rand
	nature := mathutil.Pick(r, natures)
	sides, err := g.triangleSides(env, nature)
	if err != nil {
		return question.Question{}, err
	}
	sides = mathutil.Shuffle(r, sides)

	text := env.Sentence(triangleSentences,
		"a", strconv.Itoa(sides[0]), "b", strconv.Itoa(sides[1]), "c", strconv.Itoa(sides[2]))
	options := make([]question.Value, len(natures))
	for i, n := range mathutil.Shuffle(r, natures) {
		options[i] = question.Text(n)
	}
	return question.FromValues(text, options, question.Text(nature)), nil
}

// triangleSides draws side lengths of the given nature by rejection.
func (g *generator) triangleSides(env question.Env, nature string) ([]int, error) {
	r := env.Rand
	iv := g.cfg.TriangleSides
	if nature == Right {
		triples := mathutil.PythagoreanTriples(iv)
		if len(triples) == 0 {
			return nil, fmt.Errorf("%w: no right triangle with sides in %s", mathutil.ErrConfiguration, iv)
		}
		t := mathutil.Pick(r, triples)
		return t[:], nil
	}
	if nature == Equilateral {
		s := mathutil.RandInt(r, iv)
		return []int{s, s, s}, nil
	}
	for range triangleAttempts {
		var sides []int
		if nature == Isosceles {
			s := mathutil.RandInt(r, iv)
			sides = []int{s, s, mathutil.RandInt(r, iv)}
		} else {
			sides = []int{mathutil.RandInt(r, iv), mathutil.RandInt(r, iv), mathutil.RandInt(r, iv)}
		}
		if got, err := Nature(sides[0], sides[1], sides[2]); err == nil && got == nature {
			return sides, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s triangle found with sides in %s", mathutil.ErrConfiguration, nature, iv)
}
