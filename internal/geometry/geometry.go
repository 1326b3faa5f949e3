// Package geometry generates questions on polygons, triangles and metric
// unit conversions.
package geometry

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
		question.Kind{Name: "how_many_side", Generate: g.howManySides},
		question.Kind{Name: "angles_sum", Generate: g.anglesSum},
		question.Kind{Name: "triangle_nature", Generate: g.triangleNature},
		question.Kind{Name: "convert_unit", Generate: g.convertUnit},
	), nil
}
