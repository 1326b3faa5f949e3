package mathutil

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrConfiguration marks a generator setup that cannot produce a value:
// reversed bounds, exclusions covering a whole range, empty registries.
var ErrConfiguration = errors.New("configuration error")

// Interval is a closed range of integers.
type Interval struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Span builds the interval [min, max].
func Span(min, max int) Interval {
	return Interval{Min: min, Max: max}
}

// Validate reports a reversed interval.
func (iv Interval) Validate() error {
	if iv.Min > iv.Max {
		return fmt.Errorf("%w: interval [%d, %d] is reversed", ErrConfiguration, iv.Min, iv.Max)
	}
	return nil
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int {
	if iv.Min > iv.Max {
		return 0
	}
	return iv.Max - iv.Min + 1
}

func (iv Interval) Contains(n int) bool {
	return n >= iv.Min && n <= iv.Max
}

// Widen pads both ends of the interval by step.
func (iv Interval) Widen(step int) Interval {
	return Interval{Min: iv.Min - step, Max: iv.Max + step}
}

// Values lists every integer of the interval in ascending order.
func (iv Interval) Values() []int {
	out := make([]int, 0, iv.Len())
	for n := iv.Min; n <= iv.Max; n++ {
		out = append(out, n)
	}
	return out
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Min, iv.Max)
}

// UnmarshalYAML accepts both the mapping form {min: 1, max: 4} and the
// short sequence form [1, 4].
func (iv *Interval) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: interval needs exactly two bounds, got %d", node.Line, len(pair))
		}
		iv.Min, iv.Max = pair[0], pair[1]
		return nil
	}
	type plain Interval
	var raw plain
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*iv = Interval(raw)
	return nil
}
