package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of steps.
type WindowStats struct {
	WindowStart int `csv:"-"`
	WindowEnd   int `csv:"window_end"`
	Steps       int `csv:"steps"`

	// Population count at window end
	Population int `csv:"population"`

	// Events during window
	Starved   int `csv:"starved"`
	DiedOfAge int `csv:"died_of_age"`
	Replaced  int `csv:"replaced"`
	Moved     int `csv:"moved"`
	Stayed    int `csv:"stayed"`
	Harvested int `csv:"harvested"`

	// Population series over the window
	PopMean   float64 `csv:"pop_mean"`
	PopStdDev float64 `csv:"pop_std"`

	// Sugar reserve distribution (sampled at window end)
	SugarMean float64 `csv:"sugar_mean"`
	SugarP10  float64 `csv:"sugar_p10"`
	SugarP50  float64 `csv:"sugar_p50"`
	SugarP90  float64 `csv:"sugar_p90"`

	// Field state
	FieldTotal int     `csv:"field_total"`
	FieldFill  float64 `csv:"field_fill"`
}

// SugarStats calculates mean and percentiles from reserve values.
func SugarStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, p10, p50, p90
}

// SeriesStats calculates mean and standard deviation of a count series.
func SeriesStats(series []int) (mean, std float64) {
	if len(series) == 0 {
		return 0, 0
	}

	values := make([]float64, len(series))
	for i, v := range series {
		values[i] = float64(v)
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	return mean, std
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("population", s.Population),
		slog.Int("starved", s.Starved),
		slog.Int("died_of_age", s.DiedOfAge),
		slog.Int("replaced", s.Replaced),
		slog.Int("moved", s.Moved),
		slog.Int("stayed", s.Stayed),
		slog.Int("harvested", s.Harvested),
		slog.Float64("pop_mean", s.PopMean),
		slog.Float64("pop_std", s.PopStdDev),
		slog.Float64("sugar_mean", s.SugarMean),
		slog.Float64("sugar_p10", s.SugarP10),
		slog.Float64("sugar_p50", s.SugarP50),
		slog.Float64("sugar_p90", s.SugarP90),
		slog.Int("field_total", s.FieldTotal),
		slog.Float64("field_fill", s.FieldFill),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
