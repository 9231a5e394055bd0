package main

import (
	"github.com/pthm-cable/sugarscape/config"
	"github.com/pthm-cable/sugarscape/sim"
	"github.com/pthm-cable/sugarscape/telemetry"
)

// failedRunFitness is returned when a run cannot be constructed or aborts.
const failedRunFitness = 1e9

// FitnessEvaluator runs headless simulations and scores carrying capacity.
// Fitness is the negated mean population over the final quarter of the run,
// averaged across seeds: lower is better for the minimizer, so a larger
// sustained population wins.
type FitnessEvaluator struct {
	params     *ParamVector
	steps      int
	seeds      []int64
	baseConfig *config.Config
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, steps int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		steps:      steps,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	var total float64
	for _, seed := range fe.seeds {
		cfg := *fe.baseConfig
		fe.params.ApplyToConfig(&cfg, raw)

		engine, err := sim.New(&cfg, seed)
		if err != nil {
			return failedRunFitness
		}

		for i := 0; i < fe.steps; i++ {
			if _, err := engine.Step(); err != nil {
				return failedRunFitness
			}
		}

		history := engine.History()
		tail := history[len(history)*3/4:]
		mean, _ := telemetry.SeriesStats(tail)
		total += mean
	}

	return -total / float64(len(fe.seeds))
}
