package arithmetic

import (
	"fmt"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

const Subject = "Arithmetic"

// Config bounds the numbers drawn by the arithmetic generators.
type Config struct {
	PerfectSquare mathutil.Interval `yaml:"perfect_square"`
	Prime         mathutil.Interval `yaml:"prime"`

	// GCDNumbers bounds both operands; they share the factor GCDFactor.
	GCDNumbers mathutil.Interval `yaml:"gcd_numbers"`
	GCDFactor  mathutil.Interval `yaml:"gcd_factor"`

	Divisible mathutil.Interval `yaml:"divisible"`
	Divisors  []int             `yaml:"divisors"`

	Binary mathutil.Interval `yaml:"binary"`
}

func DefaultConfig() Config {
	return Config{
		PerfectSquare: mathutil.Span(25, 196),
		Prime:         mathutil.Span(10, 40),
		GCDNumbers:    mathutil.Span(20, 40),
		GCDFactor:     mathutil.Span(2, 6),
		Divisible:     mathutil.Span(100, 10000),
		Divisors:      []int{3, 5, 6, 7, 9, 10, 15},
		Binary:        mathutil.Span(5, 32),
	}
}

func (c Config) Validate() error {
	for name, iv := range map[string]mathutil.Interval{
		"perfect_square": c.PerfectSquare,
		"prime":          c.Prime,
		"gcd_numbers":    c.GCDNumbers,
		"gcd_factor":     c.GCDFactor,
		"divisible":      c.Divisible,
		"binary":         c.Binary,
	} {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("arithmetic %s: %w", name, err)
		}
	}
	if c.GCDFactor.Min < 1 {
		return fmt.Errorf("arithmetic gcd_factor: %w: factors must be positive", mathutil.ErrConfiguration)
	}
	if len(c.Divisors) == 0 {
		return fmt.Errorf("arithmetic divisors: %w: empty", mathutil.ErrConfiguration)
	}
	for _, d := range c.Divisors {
		if d < 2 {
			return fmt.Errorf("arithmetic divisors: %w: %d divides everything", mathutil.ErrConfiguration, d)
		}
	}
	if c.Binary.Min < 1 {
		return fmt.Errorf("arithmetic binary: %w: values must be positive", mathutil.ErrConfiguration)
	}
	return nil
}
