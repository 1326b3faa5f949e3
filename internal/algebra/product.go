package algebra

import (
	"slices"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const productAttempts = 20

var productSentences = []notation.Sentence{
	"Quel est le produit de {l}{n1}{l} par {l}{n2}{l} ?",
	"Combien font {l}{n1}{times}{n2}{l} ?",
	"Calcule {l}{n1}{times}{n2}{l}.",
}

// product drills the multiplication tables. The 11 table is multiplied by
// a two-digit number.
func (g *generator) product(env question.Env) (question.Question, error) {
	r := env.Rand
	tables := g.cfg.ProductTables
	hasEleven := tables.Contains(11)

	var n1 int
	if hasEleven && r.Float64() < g.cfg.ProductElevenOdds {
		n1 = 11
	} else {
		var excluded []int
		if hasEleven {
			excluded = append(excluded, 11)
		}
		var err error
		if n1, err = mathutil.RandIntExcluding(r, tables, excluded...); err != nil {
			return question.Question{}, err
		}
	}

	factors := tables
	if n1 == 11 {
		factors = g.cfg.ProductElevenWith
	}
	n2 := mathutil.RandInt(r, factors)
	answer := n1 * n2

	values := []int{answer}
	for range productAttempts {
		if len(values) == 4 {
			break
		}
		var fake int
		if n1 == 11 {
			f, err := mathutil.RandIntExcluding(r, factors, n2)
			if err != nil {
				break
			}
			fake = 11 * f
		} else {
			f1, err := mathutil.RandIntExcluding(r, tables, n1)
			if err != nil {
				break
			}
			fake = f1 * mathutil.RandInt(r, tables)
		}
		if !slices.Contains(values, fake) {
			values = append(values, fake)
		}
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, mathutil.Span(answer-10, answer+10), 5, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	text := env.Sentence(productSentences,
		"n1", strconv.Itoa(n1), "n2", strconv.Itoa(n2), "times", env.Notation.Times())
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(answer)), nil
}
