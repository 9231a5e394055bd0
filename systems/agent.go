package systems

import (
	"math/rand"

	"github.com/pthm-cable/sugarscape/components"
	"github.com/pthm-cable/sugarscape/config"
)

// RollTraits draws vision, metabolism, and lifespan for a newborn agent
// from the configured ranges.
func RollTraits(rng *rand.Rand, cfg *config.Config) components.Traits {
	return components.Traits{
		Vision:     1 + rng.Intn(cfg.Agent.MaxVision),
		Metabolism: 1 + rng.Float64()*(cfg.Agent.MaxMetabolism-1),
		Lifespan:   cfg.Agent.MinLifespan + rng.Intn(cfg.Agent.MaxLifespan-cfg.Agent.MinLifespan+1),
	}
}

// RollSugar draws an agent's initial sugar reserve.
func RollSugar(rng *rand.Rand, cfg *config.Config) float64 {
	return cfg.Agent.MinSugar + rng.Float64()*(cfg.Agent.MaxSugar-cfg.Agent.MinSugar)
}

// Metabolize applies one step of intake and upkeep: the harvested sugar is
// added to the reserve, metabolism is subtracted, and the agent ages.
func Metabolize(a *components.Agent, t *components.Traits, harvested int) {
	a.Sugar += float64(harvested) - t.Metabolism
	a.Age++
}

// Starving reports whether the agent's reserve has run out.
func Starving(a *components.Agent) bool {
	return a.Sugar <= 0
}

// Old reports whether the agent has outlived its lifespan.
func Old(a *components.Agent, t *components.Traits) bool {
	return a.Age > t.Lifespan
}
