package arithmetic

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

const gcdAttempts = 10

var gcdSentences = []notation.Sentence{
	"Trouve le {operation} de {l}{n1}{l} et {l}{n2}{l}.",
	"Calcule le {operation} des nombres {l}{n1}{l} et {l}{n2}{l}.",
	"Quel est le {operation} de {l}{n1}{l} et {l}{n2}{l} ?",
}

var binarySentences = []notation.Sentence{
	"Convertis le nombre binaire {l}{bits}{base}{l} en décimal.",
	"Quelle est l'écriture décimale de {l}{bits}{base}{l}{suffix} ?",
	"Exprime {l}{bits}{base}{l}{suffix} en base {l}10{l}.",
}

type divisorOperation struct {
	labels []string
	apply  func(a, b int) int
}

var (
	gcdOperation = divisorOperation{labels: []string{"PGCD", "plus grand diviseur commun"}, apply: mathutil.GCD}
	lcmOperation = divisorOperation{labels: []string{"PPCM", "plus petit multiple commun"}, apply: mathutil.LCM}
)

// gcdLCM asks for the GCD or LCM of two multiples of a shared factor so the
// GCD is never a trivial 1.
func (g *generator) gcdLCM(env question.Env) (question.Question, error) {
	r := env.Rand
	k := mathutil.RandInt(r, g.cfg.GCDFactor)
	iv := g.cfg.GCDNumbers
	multiples := mathutil.Span((iv.Min+k-1)/k, iv.Max/k)
	if multiples.Len() < 2 {
		return question.Question{}, fmt.Errorf("%w: fewer than two multiples of %d in %s", mathutil.ErrConfiguration, k, iv)
	}
	m1 := mathutil.RandInt(r, multiples)
	m2, err := mathutil.RandIntExcluding(r, multiples, m1)
	if err != nil {
		return question.Question{}, err
	}
	n1, n2 := k*m1, k*m2

	op := gcdOperation
	traps := []int{k, mathutil.Abs(n1 - n2)}
	if r.IntN(2) == 0 {
		op = lcmOperation
		traps = []int{n1 * n2, max(n1, n2)}
	}
	answer := op.apply(n1, n2)

	values := []int{answer}
	for _, trap := range traps {
		if !slices.Contains(values, trap) {
			values = append(values, trap)
		}
	}
	for range gcdAttempts {
		if len(values) == 4 {
			break
		}
		f1 := mathutil.RandInt(r, multiples)
		f2 := mathutil.RandInt(r, multiples)
		if fake := op.apply(k*f1, k*f2); !slices.Contains(values, fake) {
			values = append(values, fake)
		}
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, mathutil.Span(slices.Min(values), slices.Max(values)+4), 4, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	text := env.Sentence(gcdSentences,
		"operation", mathutil.Pick(r, op.labels), "n1", strconv.Itoa(n1), "n2", strconv.Itoa(n2))
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(answer)), nil
}

// binaryToDecimal shows a number in base 2. Distractors flip one bit or
// read the digits backwards.
func (g *generator) binaryToDecimal(env question.Env) (question.Question, error) {
	r := env.Rand
	n := mathutil.RandInt(r, g.cfg.Binary)
	digits := strconv.FormatInt(int64(n), 2)

	var traps []int
	for i := range bits.Len(uint(n)) {
		traps = append(traps, n^(1<<i))
	}
	if reversed, err := strconv.ParseInt(reverse(digits), 2, 64); err == nil {
		traps = append(traps, int(reversed))
	}

	values := []int{n}
	for _, trap := range mathutil.Shuffle(r, traps) {
		if len(values) < 4 && trap > 0 && !slices.Contains(values, trap) {
			values = append(values, trap)
		}
	}
	for len(values) < 4 {
		v, err := mathutil.RandIntWidening(r, g.cfg.Binary, 2, values)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, v)
	}

	base, suffix := "", " (binaire)"
	if env.Notation.IsLaTeX() {
		base, suffix = "_2", ""
	}
	text := env.Sentence(binarySentences, "bits", digits, "base", base, "suffix", suffix)
	return question.FromValues(text, env.Nums(mathutil.Shuffle(r, values)), env.Num(n)), nil
}

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}
