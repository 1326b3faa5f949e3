package mathutil

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// maxWidenRounds bounds how many times RandIntWidening pads a saturated range.
const maxWidenRounds = 8

// RandInt draws uniformly from iv, which must be valid.
func RandInt(r *rand.Rand, iv Interval) int {
	return iv.Min + r.IntN(iv.Len())
}

// RandIntExcluding draws uniformly from iv, skipping the excluded values.
// It fails up front when the exclusions leave nothing to draw.
func RandIntExcluding(r *rand.Rand, iv Interval, excluded ...int) (int, error) {
	if err := iv.Validate(); err != nil {
		return 0, err
	}
	if covers(iv, excluded) {
		return 0, fmt.Errorf("%w: exclusions %v leave nothing in %s", ErrConfiguration, excluded, iv)
	}
	for {
		n := RandInt(r, iv)
		if !slices.Contains(excluded, n) {
			return n, nil
		}
	}
}

// RandIntWidening draws a value outside taken from iv. Each time every value
// of the current range is taken, the range is padded by pad on both sides.
func RandIntWidening(r *rand.Rand, iv Interval, pad int, taken []int) (int, error) {
	if err := iv.Validate(); err != nil {
		return 0, err
	}
	if pad < 1 {
		pad = 1
	}
	for range maxWidenRounds {
		if !covers(iv, taken) {
			return RandIntExcluding(r, iv, taken...)
		}
		iv = iv.Widen(pad)
	}
	return 0, fmt.Errorf("%w: no free value left around %s", ErrConfiguration, iv)
}

// Pick returns a uniformly chosen element of items, which must not be empty.
func Pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := slices.Clone(items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights are never picked; -1 means nothing can be picked.
func WeightedIndex(r *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}
	n := r.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func covers(iv Interval, excluded []int) bool {
	seen := make(map[int]struct{}, len(excluded))
	for _, n := range excluded {
		if iv.Contains(n) {
			seen[n] = struct{}{}
		}
	}
	return len(seen) >= iv.Len()
}
