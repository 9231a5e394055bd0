package sim

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sugarscape/components"
)

// occupancy is the only owner of the cell-to-agent relation. Every claim and
// release goes through it, so at most one agent holds a cell at any time and
// a mismatch between an agent's position and its claimed cell cannot build
// up silently.
type occupancy struct {
	cells map[components.Position]ecs.Entity
}

func newOccupancy(capacity int) *occupancy {
	return &occupancy{cells: make(map[components.Position]ecs.Entity, capacity)}
}

// Held reports whether loc is currently held by an agent.
func (o *occupancy) Held(loc components.Position) bool {
	_, ok := o.cells[loc]
	return ok
}

// Claim marks loc as held by entity. Claiming an already-held cell is an
// internal-consistency failure and aborts.
func (o *occupancy) Claim(loc components.Position, entity ecs.Entity) {
	if holder, ok := o.cells[loc]; ok {
		panic(fmt.Sprintf("sim: cell (%d,%d) already held by entity %v", loc.Row, loc.Col, holder))
	}
	o.cells[loc] = entity
}

// Release frees loc, which must be held by entity.
func (o *occupancy) Release(loc components.Position, entity ecs.Entity) {
	holder, ok := o.cells[loc]
	if !ok || holder != entity {
		panic(fmt.Sprintf("sim: entity %v released cell (%d,%d) it does not hold", entity, loc.Row, loc.Col))
	}
	delete(o.cells, loc)
}

// Len returns the number of held cells.
func (o *occupancy) Len() int {
	return len(o.cells)
}
