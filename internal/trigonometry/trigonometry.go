// Package trigonometry generates unit circle and right triangle questions.
package trigonometry

import (
	"github.com/gokatarajesh/qcm-math/internal/question"
)

type generator struct {
	cfg    Config
	angles []int
	conv   []int
}

func New(cfg Config) (*question.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &generator{
		cfg:    cfg,
		angles: cfg.ExtendedAngles(cfg.Turns),
		conv:   cfg.ExtendedAngles(cfg.ConversionTurns),
	}
	return question.NewSet(Subject,
		question.Kind{Name: "trigo_formula", Generate: g.formula},
		question.Kind{Name: "found_value", Generate: g.foundValue},
		question.Kind{Name: "is_the_same_value", Generate: g.sameValue},
		question.Kind{Name: "convert_value_into_degree_or_radian", Generate: g.convert},
	), nil
}
