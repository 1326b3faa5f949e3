package algebra

import (
	"fmt"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

// Subject is the catalog name of the algebra questions.
const Subject = "Algebra"

// Config bounds every random draw of the algebra generators.
type Config struct {
	// ShuffleEquations lets polynomial terms come out in any order.
	ShuffleEquations bool `yaml:"shuffle_equations"`

	AntecedentCoefficient mathutil.Interval `yaml:"antecedent_coefficient"`
	AntecedentMultiplier  mathutil.Interval `yaml:"antecedent_multiplier"`
	AntecedentSolution    mathutil.Interval `yaml:"antecedent_solution"`

	ImageQuadratic mathutil.Interval `yaml:"image_quadratic"`
	ImageLinear    mathutil.Interval `yaml:"image_linear"`
	ImageConstant  mathutil.Interval `yaml:"image_constant"`
	ImageInput     mathutil.Interval `yaml:"image_input"`

	FactorLeading   mathutil.Interval `yaml:"factor_leading"`
	FactorSmallRoot mathutil.Interval `yaml:"factor_small_root"`
	FactorLargeRoot mathutil.Interval `yaml:"factor_large_root"`

	DiscriminantA mathutil.Interval `yaml:"discriminant_a"`
	DiscriminantB mathutil.Interval `yaml:"discriminant_b"`
	DiscriminantC mathutil.Interval `yaml:"discriminant_c"`

	// ProductTables are the multiplication tables drilled; 11 is special
	// and gets multiplied by a two-digit number.
	ProductTables     mathutil.Interval `yaml:"product_tables"`
	ProductElevenOdds float64           `yaml:"product_eleven_odds"`
	ProductElevenWith mathutil.Interval `yaml:"product_eleven_with"`
}

func DefaultConfig() Config {
	return Config{
		ShuffleEquations: true,

		AntecedentCoefficient: mathutil.Span(-4, 4),
		AntecedentMultiplier:  mathutil.Span(-2, 2),
		AntecedentSolution:    mathutil.Span(-10, 10),

		ImageQuadratic: mathutil.Span(-4, 4),
		ImageLinear:    mathutil.Span(-6, 6),
		ImageConstant:  mathutil.Span(-10, 10),
		ImageInput:     mathutil.Span(-2, 2),

		FactorLeading:   mathutil.Span(-2, 2),
		FactorSmallRoot: mathutil.Span(-1, 2),
		FactorLargeRoot: mathutil.Span(-10, 10),

		DiscriminantA: mathutil.Span(-4, 4),
		DiscriminantB: mathutil.Span(-6, 6),
		DiscriminantC: mathutil.Span(-4, 4),

		ProductTables:     mathutil.Span(6, 11),
		ProductElevenOdds: 1.0 / 6,
		ProductElevenWith: mathutil.Span(12, 99),
	}
}

// Validate rejects reversed intervals and intervals that hold nothing but
// the forbidden zero.
func (c Config) Validate() error {
	nonZero := map[string]mathutil.Interval{
		"antecedent_coefficient": c.AntecedentCoefficient,
		"antecedent_multiplier":  c.AntecedentMultiplier,
		"antecedent_solution":    c.AntecedentSolution,
		"image_quadratic":        c.ImageQuadratic,
		"image_linear":           c.ImageLinear,
		"factor_leading":         c.FactorLeading,
		"factor_small_root":      c.FactorSmallRoot,
		"discriminant_a":         c.DiscriminantA,
		"discriminant_b":         c.DiscriminantB,
		"discriminant_c":         c.DiscriminantC,
	}
	for name, iv := range nonZero {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("algebra %s: %w", name, err)
		}
		if iv == mathutil.Span(0, 0) {
			return fmt.Errorf("algebra %s: %w: only zero to draw from", name, mathutil.ErrConfiguration)
		}
	}
	for name, iv := range map[string]mathutil.Interval{
		"image_constant":      c.ImageConstant,
		"image_input":         c.ImageInput,
		"factor_large_root":   c.FactorLargeRoot,
		"product_tables":      c.ProductTables,
		"product_eleven_with": c.ProductElevenWith,
	} {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("algebra %s: %w", name, err)
		}
	}
	if c.ProductElevenOdds < 0 || c.ProductElevenOdds > 1 {
		return fmt.Errorf("algebra product_eleven_odds: %w: %v is not a probability", mathutil.ErrConfiguration, c.ProductElevenOdds)
	}
	if c.ProductTables.Len() < 2 {
		return fmt.Errorf("algebra product_tables: %w: need at least two tables", mathutil.ErrConfiguration)
	}
	return nil
}
