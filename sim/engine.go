// Package sim implements the foraging-economy simulation engine: agent
// population, occupancy bookkeeping, and the per-step activation loop.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sugarscape/components"
	"github.com/pthm-cable/sugarscape/config"
	"github.com/pthm-cable/sugarscape/systems"
	"github.com/pthm-cable/sugarscape/telemetry"
)

// Engine owns the agent population, the occupancy set, and the sugar field,
// and drives the simulation one discrete step at a time. All randomness is
// drawn from a single engine-owned source, so a fixed seed gives a fixed
// realization.
type Engine struct {
	world *ecs.World
	rng   *rand.Rand
	cfg   *config.Config
	n     int

	mapper *ecs.Map3[components.Position, components.Traits, components.Agent]
	filter *ecs.Filter3[components.Position, components.Traits, components.Agent]

	// Individual component mappers for lookups
	posMap    *ecs.Map1[components.Position]
	traitsMap *ecs.Map1[components.Traits]
	agentMap  *ecs.Map1[components.Agent]

	field    *systems.Field
	occupied *occupancy

	collector *telemetry.Collector

	tick       int
	nextID     uint32
	population int
	history    []int

	// Activation order scratch, reused across steps
	order []ecs.Entity
}

// New constructs an engine and places the initial population. Configuration
// errors (starting box off-grid or too small for the population) surface
// here, before any step runs.
func New(cfg *config.Config, seed int64) (*Engine, error) {
	world := ecs.NewWorld()

	e := &Engine{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		n:     cfg.Grid.Size,
		mapper: ecs.NewMap3[
			components.Position,
			components.Traits,
			components.Agent,
		](world),
		filter: ecs.NewFilter3[
			components.Position,
			components.Traits,
			components.Agent,
		](world),
		posMap:    ecs.NewMap1[components.Position](world),
		traitsMap: ecs.NewMap1[components.Traits](world),
		agentMap:  ecs.NewMap1[components.Agent](world),
		field:     systems.NewField(cfg),
		occupied:  newOccupancy(cfg.Population.NumAgents),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow),
	}

	if err := e.placeAgents(); err != nil {
		return nil, err
	}

	return e, nil
}

// placeAgents shuffles the candidate cells of the starting box and takes the
// first num_agents of them, so no two initial agents share a cell.
func (e *Engine) placeAgents() error {
	rows, cols := e.cfg.StartingBoxDims()
	if rows > e.n || cols > e.n {
		return fmt.Errorf("sim: starting box %dx%d exceeds the %dx%d grid", rows, cols, e.n, e.n)
	}

	locs := make([]components.Position, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			locs = append(locs, components.Position{Row: i, Col: j})
		}
	}
	e.rng.Shuffle(len(locs), func(i, j int) {
		locs[i], locs[j] = locs[j], locs[i]
	})

	num := e.cfg.Population.NumAgents
	if num > len(locs) {
		return fmt.Errorf("sim: %d agents do not fit the %dx%d starting box (%d cells)",
			num, rows, cols, len(locs))
	}

	for i := 0; i < num; i++ {
		e.spawnAgent(locs[i])
	}
	return nil
}

// spawnAgent creates an agent with fresh trait rolls at loc and claims the
// cell for it.
func (e *Engine) spawnAgent(loc components.Position) ecs.Entity {
	id := e.nextID
	e.nextID++

	pos := loc
	traits := systems.RollTraits(e.rng, e.cfg)
	agent := components.Agent{ID: id, Sugar: systems.RollSugar(e.rng, e.cfg)}

	entity := e.mapper.NewEntity(&pos, &traits, &agent)
	e.occupied.Claim(loc, entity)
	e.population++

	return entity
}

// removeAgent drops a dead agent from the population. Its cell must already
// be released by the step loop.
func (e *Engine) removeAgent(entity ecs.Entity) {
	e.mapper.Remove(entity)
	e.population--
}

// randomFreeCell picks a uniformly random unoccupied cell. The search is
// bounded: under near-total occupancy it reports failure instead of hanging.
func (e *Engine) randomFreeCell() (components.Position, error) {
	attempts := 4 * e.n * e.n
	for i := 0; i < attempts; i++ {
		loc := components.Position{Row: e.rng.Intn(e.n), Col: e.rng.Intn(e.n)}
		if !e.occupied.Held(loc) {
			return loc, nil
		}
	}
	return components.Position{}, fmt.Errorf("sim: no unoccupied cell found in %d draws, grid is nearly full", attempts)
}

// agentList collects the live population into the reused order slice.
// The query must be consumed fully before any entity is created or removed.
func (e *Engine) agentList() []ecs.Entity {
	e.order = e.order[:0]
	query := e.filter.Query()
	for query.Next() {
		e.order = append(e.order, query.Entity())
	}
	return e.order
}

// Population returns the current number of live agents.
func (e *Engine) Population() int {
	return e.population
}

// Tick returns the number of completed steps.
func (e *Engine) Tick() int {
	return e.tick
}

// History returns a copy of the per-step population counts.
func (e *Engine) History() []int {
	return append([]int(nil), e.history...)
}

// Field returns the sugar field for read-only observation.
func (e *Engine) Field() *systems.Field {
	return e.field
}

// Collector returns the engine's telemetry collector.
func (e *Engine) Collector() *telemetry.Collector {
	return e.collector
}

// SugarLevels returns the current sugar reserve of every live agent.
func (e *Engine) SugarLevels() []float64 {
	out := make([]float64, 0, e.population)
	query := e.filter.Query()
	for query.Next() {
		_, _, agent := query.Get()
		out = append(out, agent.Sugar)
	}
	return out
}
