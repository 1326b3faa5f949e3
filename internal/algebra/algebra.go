// Package algebra generates equation questions: solving, evaluating,
// factoring, discriminants and multiplication tables.
package algebra

import (
	"github.com/gokatarajesh/qcm-math/internal/question"
)

type generator struct {
	cfg Config
}

// New validates cfg and registers the algebra question kinds.
func New(cfg Config) (*question.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &generator{cfg: cfg}
	return question.NewSet(Subject,
		question.Kind{Name: "calculate_antecedent", Generate: g.antecedent},
		question.Kind{Name: "calculate_image", Generate: g.image},
		question.Kind{Name: "give_factorisation_form", Generate: g.factorisation},
		question.Kind{Name: "calculate_discriminant", Generate: g.discriminant},
		question.Kind{Name: "calcul_product", Generate: g.product},
	), nil
}
