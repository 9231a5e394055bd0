package telemetry

import (
	"math"
	"testing"
)

func TestSugarStats(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	mean, p10, p50, p90 := SugarStats(values)

	if math.Abs(mean-3.9) > 1e-9 {
		t.Errorf("expected mean 3.9, got %f", mean)
	}
	// Sorted: 1 1 2 3 3 4 5 5 6 9
	if p10 != 1 {
		t.Errorf("expected p10 = 1, got %f", p10)
	}
	if p50 != 3 {
		t.Errorf("expected p50 = 3, got %f", p50)
	}
	if p90 != 6 {
		t.Errorf("expected p90 = 6, got %f", p90)
	}

	// Input must not be reordered
	if values[0] != 3 || values[5] != 9 {
		t.Error("SugarStats mutated its input")
	}
}

func TestSugarStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := SugarStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("expected zeros for empty input, got %f %f %f %f", mean, p10, p50, p90)
	}
}

func TestSugarStatsSingle(t *testing.T) {
	mean, p10, p50, p90 := SugarStats([]float64{7})
	if mean != 7 || p10 != 7 || p50 != 7 || p90 != 7 {
		t.Errorf("expected all 7 for single value, got %f %f %f %f", mean, p10, p50, p90)
	}
}

func TestSeriesStats(t *testing.T) {
	mean, std := SeriesStats([]int{2, 4, 6})

	if math.Abs(mean-4) > 1e-9 {
		t.Errorf("expected mean 4, got %f", mean)
	}
	if math.Abs(std-2) > 1e-9 {
		t.Errorf("expected std 2, got %f", std)
	}
}

func TestSeriesStatsEdgeCases(t *testing.T) {
	mean, std := SeriesStats(nil)
	if mean != 0 || std != 0 {
		t.Errorf("expected zeros for empty series, got %f %f", mean, std)
	}

	mean, std = SeriesStats([]int{5})
	if mean != 5 || std != 0 {
		t.Errorf("expected mean 5 std 0 for single value, got %f %f", mean, std)
	}
}
