package telemetry

import "testing"

func TestCollectorFlushCadence(t *testing.T) {
	c := NewCollector(10)

	for tick := 1; tick <= 9; tick++ {
		if c.ShouldFlush(tick) {
			t.Errorf("tick %d: flushed before the window filled", tick)
		}
	}
	if !c.ShouldFlush(10) {
		t.Error("tick 10: expected flush")
	}

	c.Flush(10, 0, nil, nil, 0, 0)

	if c.ShouldFlush(19) {
		t.Error("tick 19: flushed before the second window filled")
	}
	if !c.ShouldFlush(20) {
		t.Error("tick 20: expected flush")
	}
}

func TestCollectorWindowStepsFloor(t *testing.T) {
	if got := NewCollector(0).WindowSteps(); got != 1 {
		t.Errorf("expected window of 1 step, got %d", got)
	}
	if got := NewCollector(25).WindowSteps(); got != 25 {
		t.Errorf("expected window of 25 steps, got %d", got)
	}
}

func TestCollectorFlushAggregates(t *testing.T) {
	c := NewCollector(5)

	c.RecordStarvation()
	c.RecordStarvation()
	c.RecordOldAge()
	c.RecordReplacement()
	for i := 0; i < 7; i++ {
		c.RecordMove()
	}
	for i := 0; i < 3; i++ {
		c.RecordStay()
	}
	c.RecordHarvest(4)
	c.RecordHarvest(2)

	popWindow := []int{10, 10, 9, 9, 8}
	sugars := []float64{5, 10, 15}

	stats := c.Flush(5, 8, popWindow, sugars, 3000, 6000)

	if stats.WindowStart != 0 || stats.WindowEnd != 5 || stats.Steps != 5 {
		t.Errorf("window bounds wrong: start=%d end=%d steps=%d", stats.WindowStart, stats.WindowEnd, stats.Steps)
	}
	if stats.Population != 8 {
		t.Errorf("expected population 8, got %d", stats.Population)
	}
	if stats.Starved != 2 || stats.DiedOfAge != 1 || stats.Replaced != 1 {
		t.Errorf("death counts wrong: starved=%d died_of_age=%d replaced=%d",
			stats.Starved, stats.DiedOfAge, stats.Replaced)
	}
	if stats.Moved != 7 || stats.Stayed != 3 {
		t.Errorf("movement counts wrong: moved=%d stayed=%d", stats.Moved, stats.Stayed)
	}
	if stats.Harvested != 6 {
		t.Errorf("expected 6 harvested, got %d", stats.Harvested)
	}
	if stats.PopMean != 9.2 {
		t.Errorf("expected pop mean 9.2, got %f", stats.PopMean)
	}
	if stats.SugarMean != 10 || stats.SugarP50 != 10 {
		t.Errorf("sugar stats wrong: mean=%f p50=%f", stats.SugarMean, stats.SugarP50)
	}
	if stats.FieldTotal != 3000 || stats.FieldFill != 0.5 {
		t.Errorf("field stats wrong: total=%d fill=%f", stats.FieldTotal, stats.FieldFill)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(5)

	c.RecordStarvation()
	c.RecordMove()
	c.RecordHarvest(9)
	c.Flush(5, 1, []int{1}, nil, 0, 0)

	stats := c.Flush(10, 1, []int{1}, nil, 0, 0)

	if stats.WindowStart != 5 || stats.WindowEnd != 10 {
		t.Errorf("window bounds wrong after reset: start=%d end=%d", stats.WindowStart, stats.WindowEnd)
	}
	if stats.Starved != 0 || stats.Moved != 0 || stats.Harvested != 0 {
		t.Errorf("counters survived a flush: starved=%d moved=%d harvested=%d",
			stats.Starved, stats.Moved, stats.Harvested)
	}
}
