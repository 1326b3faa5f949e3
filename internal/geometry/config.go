package geometry

import (
	"fmt"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

const Subject = "Geometry"

// Shape is a named polygon.
type Shape struct {
	Name  string `yaml:"name"`
	Sides int    `yaml:"sides"`
}

// AngleSum is the sum of the interior angles of the shape, in degrees.
func (s Shape) AngleSum() int {
	return (s.Sides - 2) * 180
}

type Config struct {
	// Polygons are the shapes whose side count is asked.
	Polygons []Shape `yaml:"polygons"`
	// AngleShapes are the shapes whose angle sum is asked.
	AngleShapes []Shape `yaml:"angle_shapes"`

	TriangleSides mathutil.Interval `yaml:"triangle_sides"`

	Units []string `yaml:"units"`
	// UnitTenths bounds the converted value, in tenths.
	UnitTenths mathutil.Interval `yaml:"unit_tenths"`
}

func DefaultConfig() Config {
	return Config{
		Polygons: []Shape{
			{Name: "pentagone", Sides: 5},
			{Name: "hexagone", Sides: 6},
			{Name: "heptagone", Sides: 7},
			{Name: "octogone", Sides: 8},
			{Name: "ennéagone", Sides: 9},
			{Name: "décagone", Sides: 10},
			{Name: "dodécagone", Sides: 12},
		},
		AngleShapes: []Shape{
			{Name: "triangle", Sides: 3},
			{Name: "carré", Sides: 4},
			{Name: "pentagone", Sides: 5},
			{Name: "hexagone", Sides: 6},
		},
		TriangleSides: mathutil.Span(3, 10),
		Units:         []string{"grammes", "litres", "mètres"},
		UnitTenths:    mathutil.Span(1, 100),
	}
}

func (c Config) Validate() error {
	if len(c.Polygons) < 4 {
		return fmt.Errorf("geometry polygons: %w: need four shapes for four answers", mathutil.ErrConfiguration)
	}
	if len(c.AngleShapes) < 2 {
		return fmt.Errorf("geometry angle_shapes: %w: need at least two shapes", mathutil.ErrConfiguration)
	}
	for _, s := range append(append([]Shape{}, c.Polygons...), c.AngleShapes...) {
		if s.Sides < 3 || s.Name == "" {
			return fmt.Errorf("geometry shape %q: %w: a polygon has a name and at least three sides", s.Name, mathutil.ErrConfiguration)
		}
	}
	sums := make(map[int]bool, len(c.AngleShapes))
	for _, s := range c.AngleShapes {
		sums[s.AngleSum()] = true
	}
	if len(sums) < 2 {
		return fmt.Errorf("geometry angle_shapes: %w: need at least two different angle sums", mathutil.ErrConfiguration)
	}
	if err := c.TriangleSides.Validate(); err != nil {
		return fmt.Errorf("geometry triangle_sides: %w", err)
	}
	if c.TriangleSides.Min < 1 {
		return fmt.Errorf("geometry triangle_sides: %w: sides must be positive", mathutil.ErrConfiguration)
	}
	if len(c.Units) == 0 {
		return fmt.Errorf("geometry units: %w: empty", mathutil.ErrConfiguration)
	}
	if err := c.UnitTenths.Validate(); err != nil {
		return fmt.Errorf("geometry unit_tenths: %w", err)
	}
	if c.UnitTenths.Min < 1 {
		return fmt.Errorf("geometry unit_tenths: %w: values must be positive", mathutil.ErrConfiguration)
	}
	return nil
}
