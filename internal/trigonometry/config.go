package trigonometry

import (
	"fmt"
	"slices"

	"github.com/gokatarajesh/qcm-math/internal/mathutil"
)

const Subject = "Trigonometry"

type Config struct {
	// BaseAngles are the first-quadrant angles, in degrees, that every
	// other angle is derived from by quarter turns.
	BaseAngles []int `yaml:"base_angles"`
	// Turns is the range of quarter turns added to the base angles for
	// value questions.
	Turns mathutil.Interval `yaml:"turns"`
	// ConversionTurns is the same range for degree/radian conversions.
	ConversionTurns mathutil.Interval `yaml:"conversion_turns"`
}

func DefaultConfig() Config {
	return Config{
		BaseAngles:      []int{0, 30, 45, 60},
		Turns:           mathutil.Span(-4, 4),
		ConversionTurns: mathutil.Span(-2, 2),
	}
}

func (c Config) Validate() error {
	if len(c.BaseAngles) == 0 {
		return fmt.Errorf("trigonometry base_angles: %w: empty", mathutil.ErrConfiguration)
	}
	for _, a := range c.BaseAngles {
		if !slices.Contains([]int{0, 30, 45, 60, 90}, a) {
			return fmt.Errorf("trigonometry base_angles: %w: %d° has no exact value", mathutil.ErrConfiguration, a)
		}
	}
	if err := c.Turns.Validate(); err != nil {
		return fmt.Errorf("trigonometry turns: %w", err)
	}
	if err := c.ConversionTurns.Validate(); err != nil {
		return fmt.Errorf("trigonometry conversion_turns: %w", err)
	}
	if len(c.ExtendedAngles(c.ConversionTurns)) < 4 {
		return fmt.Errorf("trigonometry conversion_turns: %w: fewer than four angles", mathutil.ErrConfiguration)
	}
	return nil
}

// ExtendedAngles lists the base angles shifted by every quarter turn of
// turns, the last turn excluded, followed by the full quarter turn that
// ends the range. Duplicates are dropped; order is ascending.
func (c Config) ExtendedAngles(turns mathutil.Interval) []int {
	var out []int
	for i := turns.Min; i < turns.Max; i++ {
		for _, a := range c.BaseAngles {
			out = append(out, a+90*i)
		}
	}
	out = append(out, 90*turns.Max)
	slices.Sort(out)
	return slices.Compact(out)
}
