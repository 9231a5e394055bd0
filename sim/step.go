package sim

import (
	"github.com/pthm-cable/sugarscape/components"
	"github.com/pthm-cable/sugarscape/systems"
)

// Step advances the simulation by one discrete time step and returns the
// population size after it completes. Agents activate in a fresh uniform
// permutation; each releases its cell, forages, harvests, pays metabolism,
// and either survives at its new cell or is removed (and, with the replace
// policy, replaced by a new random agent). The step ends by appending the
// population to history and regrowing the field.
//
// The only error is exhaustion of the bounded free-cell search during
// replacement; after that error the engine is no longer usable.
func (e *Engine) Step() (int, error) {
	order := e.agentList()
	e.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	replace := e.cfg.Population.Replace
	for _, entity := range order {
		pos := e.posMap.Get(entity)
		traits := e.traitsMap.Get(entity)
		agent := e.agentMap.Get(entity)

		// The agent may move, so its cell is freed for the rest of the
		// step before it looks around.
		center := *pos
		e.occupied.Release(center, entity)

		dest := e.forage(center, traits.Vision)
		*pos = dest
		if dest == center {
			e.collector.RecordStay()
		} else {
			e.collector.RecordMove()
		}

		harvested := e.field.Harvest(dest.Row, dest.Col)
		e.collector.RecordHarvest(harvested)
		systems.Metabolize(agent, traits, harvested)

		switch {
		case systems.Starving(agent):
			e.removeAgent(entity)
			e.collector.RecordStarvation()
			if replace {
				if err := e.replaceAgent(); err != nil {
					return e.population, err
				}
			}
		case systems.Old(agent, traits):
			e.removeAgent(entity)
			e.collector.RecordOldAge()
			if replace {
				if err := e.replaceAgent(); err != nil {
					return e.population, err
				}
			}
		default:
			e.occupied.Claim(dest, entity)
		}
	}

	e.history = append(e.history, e.population)
	e.field.Grow()
	e.tick++

	return e.population, nil
}

// forage picks the destination for an agent at center: the unoccupied
// visible cell with the most sugar. Candidates are scanned closest distance
// first with equal-distance ties shuffled, and only a strictly higher level
// displaces the best, so the first maximum in generation order wins. With
// nothing unoccupied in sight the agent stays put.
func (e *Engine) forage(center components.Position, vision int) components.Position {
	best := center
	bestLevel := -1
	for _, off := range systems.VisibleOffsets(e.rng, vision) {
		loc := components.Position{
			Row: systems.Wrap(center.Row+off.DRow, e.n),
			Col: systems.Wrap(center.Col+off.DCol, e.n),
		}
		if e.occupied.Held(loc) {
			continue
		}
		if level := e.field.LevelAt(loc.Row, loc.Col); level > bestLevel {
			best = loc
			bestLevel = level
		}
	}
	return best
}

// replaceAgent spawns a fresh random agent at a random unoccupied cell.
func (e *Engine) replaceAgent() error {
	loc, err := e.randomFreeCell()
	if err != nil {
		return err
	}
	e.spawnAgent(loc)
	e.collector.RecordReplacement()
	return nil
}
