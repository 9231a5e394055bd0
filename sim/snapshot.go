package sim

import "sort"

// AgentState is one agent's externally visible state.
type AgentState struct {
	ID         uint32  `json:"id"`
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Vision     int     `json:"vision"`
	Metabolism float64 `json:"metabolism"`
	Lifespan   int     `json:"lifespan"`
	Sugar      float64 `json:"sugar"`
	Age        int     `json:"age"`
}

// Snapshot is a deep copy of the observable simulation state, consumed by
// renderers and collectors. Mutating it never touches the engine.
type Snapshot struct {
	Tick     int          `json:"tick"`
	N        int          `json:"n"`
	Level    []int        `json:"level"`
	Capacity []int        `json:"capacity"`
	Agents   []AgentState `json:"agents"`
	History  []int        `json:"history"`
}

// Snapshot captures the current observable state. Agents are sorted by ID
// so equal simulations produce equal snapshots.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     e.tick,
		N:        e.n,
		Level:    append([]int(nil), e.field.Level...),
		Capacity: append([]int(nil), e.field.Cap...),
		History:  append([]int(nil), e.history...),
		Agents:   make([]AgentState, 0, e.population),
	}

	query := e.filter.Query()
	for query.Next() {
		pos, traits, agent := query.Get()
		snap.Agents = append(snap.Agents, AgentState{
			ID:         agent.ID,
			Row:        pos.Row,
			Col:        pos.Col,
			Vision:     traits.Vision,
			Metabolism: traits.Metabolism,
			Lifespan:   traits.Lifespan,
			Sugar:      agent.Sugar,
			Age:        agent.Age,
		})
	}
	sort.Slice(snap.Agents, func(i, j int) bool {
		return snap.Agents[i].ID < snap.Agents[j].ID
	})

	return snap
}
