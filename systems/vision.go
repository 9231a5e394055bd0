package systems

import "math/rand"

// Offset is a relative cell displacement.
type Offset struct {
	DRow, DCol int
}

// VisibleOffsets returns the cells visible at the given vision radius as
// offsets from the center, cardinal directions only, grouped by increasing
// distance so callers scanning in order try closer cells first. The four
// offsets at each distance are shuffled per invocation, which is what makes
// equal-distance ties break randomly.
func VisibleOffsets(rng *rand.Rand, vision int) []Offset {
	out := make([]Offset, 0, 4*vision)
	for d := 1; d <= vision; d++ {
		block := [4]Offset{{-d, 0}, {d, 0}, {0, -d}, {0, d}}
		rng.Shuffle(4, func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})
		out = append(out, block[:]...)
	}
	return out
}
