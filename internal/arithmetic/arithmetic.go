// Package arithmetic generates number theory questions.
package arithmetic

import (
	"github.com/gokatarajesh/qcm-math/internal/question"
)

type generator struct {
	cfg Config
}

func New(cfg Config) (*question.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &generator{cfg: cfg}
	return question.NewSet(Subject,
		question.Kind{Name: "perfect_square", Generate: g.perfectSquare},
		question.Kind{Name: "prime_number", Generate: g.primeNumber},
		question.Kind{Name: "greatest_lower_common_divisor_multiple", Generate: g.gcdLCM},
		question.Kind{Name: "is_divisible_by_a_number", Generate: g.divisible},
		question.Kind{Name: "convert_bin_to_dec", Generate: g.binaryToDecimal},
	), nil
}

// yesNo is the answer list of every true/false question.
func yesNo(truth bool, text string) question.Question {
	return question.FromValues(text, []question.Value{question.Bool(true), question.Bool(false)}, question.Bool(truth))
}
