package systems

import (
	"math"

	"github.com/pthm-cable/sugarscape/config"
)

// Field is the sugar landscape: a square toroidal grid where every cell has
// a fixed capacity and a current level that regrows toward it.
type Field struct {
	N int

	// Current sugar per cell - what agents harvest
	Level []int
	// Capacity per cell, fixed at construction
	Cap []int

	growRate int
}

// NewField builds the capacity landscape from the configured peaks and
// starts every cell at capacity.
func NewField(cfg *config.Config) *Field {
	n := cfg.Grid.Size
	f := &Field{
		N:        n,
		Level:    make([]int, n*n),
		Cap:      make([]int, n*n),
		growRate: cfg.Resource.GrowRate,
	}

	// Capacity is tiered by distance to the nearest peak: each cell takes
	// the minimum Euclidean distance to the two peaks and is digitized
	// against the decreasing bin edges (closer to a peak = higher tier).
	p1, p2 := cfg.Grid.Peaks[0], cfg.Grid.Peaks[1]
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d1 := math.Hypot(float64(i-p1[0]), float64(j-p1[1]))
			d2 := math.Hypot(float64(i-p2[0]), float64(j-p2[1]))
			f.Cap[i*n+j] = digitize(math.Min(d1, d2), cfg.Grid.CapacityBins)
		}
	}
	copy(f.Level, f.Cap)

	return f
}

// digitize returns the tier index for a distance against decreasing bin
// edges: the first edge the distance reaches wins, past-all-edges is the
// highest tier.
func digitize(d float64, bins []float64) int {
	for i, edge := range bins {
		if d >= edge {
			return i
		}
	}
	return len(bins)
}

// Grow adds the growth rate to every cell, capped elementwise at capacity.
func (f *Field) Grow() {
	if f.growRate <= 0 {
		return
	}
	for i := range f.Level {
		f.Level[i] += f.growRate
		if f.Level[i] > f.Cap[i] {
			f.Level[i] = f.Cap[i]
		}
	}
}

// Harvest removes and returns the sugar at (row, col).
func (f *Field) Harvest(row, col int) int {
	i := row*f.N + col
	sugar := f.Level[i]
	f.Level[i] = 0
	return sugar
}

// LevelAt returns the current sugar at (row, col).
func (f *Field) LevelAt(row, col int) int {
	return f.Level[row*f.N+col]
}

// CapAt returns the capacity at (row, col).
func (f *Field) CapAt(row, col int) int {
	return f.Cap[row*f.N+col]
}

// TotalLevel returns the total sugar currently on the grid.
func (f *Field) TotalLevel() int {
	var sum int
	for _, v := range f.Level {
		sum += v
	}
	return sum
}

// TotalCap returns the total capacity of the grid.
func (f *Field) TotalCap() int {
	var sum int
	for _, v := range f.Cap {
		sum += v
	}
	return sum
}

// Wrap maps a coordinate onto the torus (Go's % can return negative).
func Wrap(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
