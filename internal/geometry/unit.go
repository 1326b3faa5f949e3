package geometry

import (
	"fmt"
	"slices"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
	"github.com/gokatarajesh/qcm-math/internal/notation"
	"github.com/gokatarajesh/qcm-math/internal/question"
)

// Prefixes lists the metric prefixes from the largest to the smallest.
// Adjacent prefixes differ by a factor 10.
var Prefixes = []string{"kilo", "hecto", "déca", "", "déci", "centi", "milli"}

var unitSentences = []notation.Sentence{
	"Convertis {l}{value}{l} {from} en {to}.",
	"Combien de {to} y a-t-il dans {l}{value}{l} {from} ?",
	"{l}{value}{l} {from}, cela fait combien de {to} ?",
}

// UnitShift returns the power of ten that converts a value expressed with
// the from prefix into the to prefix.
func UnitShift(from, to string) (int, error) {
	i := slices.Index(Prefixes, from)
	if i < 0 {
		return 0, fmt.Errorf("%w: unknown prefix %q", mathutil.ErrConfiguration, from)
	}
	j := slices.Index(Prefixes, to)
	if j < 0 {
		return 0, fmt.Errorf("%w: unknown prefix %q", mathutil.ErrConfiguration, to)
	}
	return j - i, nil
}

// Decimal is the exact quantity Mantissa·10^Exp.
type Decimal struct {
	Mantissa int64
	Exp      int
}

func (d Decimal) String() string { return mathutil.FormatDecimal(d.Mantissa, d.Exp) }

// ConvertUnit converts value between two metric prefixes. Only the power of
// ten moves, so converting to the same prefix returns value unchanged.
func ConvertUnit(value Decimal, from, to string) (Decimal, error) {
	shift, err := UnitShift(from, to)
	if err != nil {
		return Decimal{}, err
	}
	value.Exp += shift
	return value, nil
}

// convertUnit draws a quantity in tenths so every option renders exactly.
func (g *generator) convertUnit(env question.Env) (question.Question, error) {
	r := env.Rand
	unit := mathutil.Pick(r, g.cfg.Units)
	quantity := Decimal{Mantissa: int64(mathutil.RandInt(r, g.cfg.UnitTenths)), Exp: -1}

	order := mathutil.Shuffle(r, Prefixes)
	from, to, wrong := order[0], order[1], order[2:5]

	format := func(target string) (string, error) {
		v, err := ConvertUnit(quantity, from, target)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	// Every option carries the target unit; only the power of ten differs.
	label := func(v string) question.Value {
		return question.Text(env.Notation.Wrap(v) + " " + to + unit)
	}
	value, err := format(to)
	if err != nil {
		return question.Question{}, err
	}
	correct := label(value)
	values := []question.Value{correct}
	for _, p := range wrong {
		v, err := format(p)
		if err != nil {
			return question.Question{}, err
		}
		values = append(values, label(v))
	}

	text := env.Sentence(unitSentences,
		"value", quantity.String(), "from", from+unit, "to", to+unit)
	return question.FromValues(text, mathutil.Shuffle(r, values), correct), nil
}
