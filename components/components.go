// Package components defines ECS components for the simulation.
package components

// Position is a cell coordinate on the toroidal grid.
type Position struct {
	Row, Col int
}

// Traits holds an agent's fixed foraging characteristics, rolled once at birth.
type Traits struct {
	Vision     int     // foraging sight radius in cells
	Metabolism float64 // sugar consumed per step
	Lifespan   int     // maximum age in steps
}

// Agent tracks an agent's identity and mutable state.
type Agent struct {
	ID    uint32
	Sugar float64 // accumulated reserve; at or below zero means starvation
	Age   int     // steps lived
}
