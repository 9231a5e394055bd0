// Package telemetry provides windowed stats collection and output for
// observers of the simulation. It consumes engine state read-only and is
// not part of the engine's contract.
package telemetry

// Collector accumulates step events within windows and produces WindowStats.
type Collector struct {
	windowSteps int
	windowStart int

	// Event counters for current window
	starved   int
	diedOfAge int
	replaced  int
	moved     int
	stayed    int
	harvested int
}

// NewCollector creates a collector that flushes every windowSteps steps.
func NewCollector(windowSteps int) *Collector {
	if windowSteps < 1 {
		windowSteps = 1
	}
	return &Collector{windowSteps: windowSteps}
}

// RecordStarvation records an agent death by reserve depletion.
func (c *Collector) RecordStarvation() {
	c.starved++
}

// RecordOldAge records an agent death by exceeded lifespan.
func (c *Collector) RecordOldAge() {
	c.diedOfAge++
}

// RecordReplacement records a replacement spawn after a death.
func (c *Collector) RecordReplacement() {
	c.replaced++
}

// RecordMove records an agent that moved to a new cell.
func (c *Collector) RecordMove() {
	c.moved++
}

// RecordStay records an agent that stayed put.
func (c *Collector) RecordStay() {
	c.stayed++
}

// RecordHarvest records sugar taken off the grid.
func (c *Collector) RecordHarvest(amount int) {
	c.harvested += amount
}

// ShouldFlush returns true once a full window of steps has passed.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStart >= c.windowSteps
}

// WindowSteps returns the number of steps per window.
func (c *Collector) WindowSteps() int {
	return c.windowSteps
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the current tick and population, the window's
// population series, the live agents' sugar reserves, and the field totals.
func (c *Collector) Flush(
	currentTick int,
	population int,
	popWindow []int,
	sugars []float64,
	fieldTotal, fieldCap int,
) WindowStats {
	popMean, popStd := SeriesStats(popWindow)
	sugarMean, sugarP10, sugarP50, sugarP90 := SugarStats(sugars)

	fill := 0.0
	if fieldCap > 0 {
		fill = float64(fieldTotal) / float64(fieldCap)
	}

	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   currentTick,
		Steps:       currentTick - c.windowStart,

		Population: population,
		Starved:    c.starved,
		DiedOfAge:  c.diedOfAge,
		Replaced:   c.replaced,
		Moved:      c.moved,
		Stayed:     c.stayed,
		Harvested:  c.harvested,

		PopMean:   popMean,
		PopStdDev: popStd,

		SugarMean: sugarMean,
		SugarP10:  sugarP10,
		SugarP50:  sugarP50,
		SugarP90:  sugarP90,

		FieldTotal: fieldTotal,
		FieldFill:  fill,
	}

	// Reset for next window
	c.windowStart = currentTick
	c.starved = 0
	c.diedOfAge = 0
	c.replaced = 0
	c.moved = 0
	c.stayed = 0
	c.harvested = 0

	return stats
}
