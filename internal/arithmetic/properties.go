package arithmetic

import (
	"fmt"
	"strconv"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

// divisibleAttempts bounds the search for a number the divisor misses.
const divisibleAttempts = 1000

var perfectSquareSentences = []notation.Sentence{
	"Le nombre {l}{n}{l} est-il un carré parfait ?",
	"{l}{n}{l} est-il le carré d'un nombre entier ?",
	"Peut-on écrire {l}{n}{l} sous la forme {l}{square}{l} avec {l}k {integer}{l} ?",
}

var primeSentences = []notation.Sentence{
	"Le nombre {l}{n}{l} est-il premier ?",
	"{l}{n}{l} est-il un nombre premier ?",
	"{l}{n}{l} n'a-t-il que deux diviseurs, {l}1{l} et lui-même ?",
}

var divisibleSentences = []notation.Sentence{
	"Le nombre {l}{k}{l} divise-t-il {l}{n}{l} ?",
	"{l}{n}{l} est-il divisible par {l}{k}{l} ?",
	"La division de {l}{n}{l} par {l}{k}{l} tombe-t-elle juste ?",
}

func (g *generator) perfectSquare(env question.Env) (question.Question, error) {
	r := env.Rand
	iv := g.cfg.PerfectSquare
	squares := mathutil.PerfectSquares(iv)
	truth := r.IntN(2) == 0

	var n int
	if truth {
		if len(squares) == 0 {
			return question.Question{}, fmt.Errorf("%w: no perfect square in %s", mathutil.ErrConfiguration, iv)
		}
		n = mathutil.Pick(r, squares)
	} else {
		var err error
		if n, err = mathutil.RandIntExcluding(r, iv, squares...); err != nil {
			return question.Question{}, err
		}
	}

	text := env.Sentence(perfectSquareSentences,
		"n", strconv.Itoa(n), "square", env.Notation.Power("k", 2), "integer", env.Notation.InIntegers())
	return yesNo(truth, text), nil
}

// primeNumber asks whether n is prime. Composite picks are odd whenever the
// range allows it, so parity gives nothing away.
func (g *generator) primeNumber(env question.Env) (question.Question, error) {
	r := env.Rand
	iv := g.cfg.Prime
	truth := r.IntN(2) == 0

	var pool []int
	if truth {
		pool = mathutil.Primes(iv)
	} else {
		var odd, even []int
		for _, n := range iv.Values() {
			if n < 2 || mathutil.IsPrime(n) {
				continue
			}
			if n%2 != 0 {
				odd = append(odd, n)
			} else {
				even = append(even, n)
			}
		}
		pool = odd
		if len(pool) == 0 {
			pool = even
		}
	}
	if len(pool) == 0 {
		return question.Question{}, fmt.Errorf("%w: no candidate for prime=%t in %s", mathutil.ErrConfiguration, truth, iv)
	}
	n := mathutil.Pick(r, pool)
	return yesNo(truth, env.Sentence(primeSentences, "n", strconv.Itoa(n))), nil
}

func (g *generator) divisible(env question.Env) (question.Question, error) {
	r := env.Rand
	iv := g.cfg.Divisible
	k := mathutil.Pick(r, g.cfg.Divisors)
	truth := r.IntN(2) == 0

	var n int
	if truth {
		multiples := mathutil.Span((iv.Min+k-1)/k, iv.Max/k)
		if multiples.Len() == 0 {
			return question.Question{}, fmt.Errorf("%w: no multiple of %d in %s", mathutil.ErrConfiguration, k, iv)
		}
		n = k * mathutil.RandInt(r, multiples)
	} else {
		found := false
		for range divisibleAttempts {
			if n = mathutil.RandInt(r, iv); n%k != 0 {
				found = true
				break
			}
		}
		if !found {
			return question.Question{}, fmt.Errorf("%w: every number of %s is a multiple of %d", mathutil.ErrConfiguration, iv, k)
		}
	}
	text := env.Sentence(divisibleSentences, "k", strconv.Itoa(k), "n", strconv.Itoa(n))
	return yesNo(truth, text), nil
}
