package sim

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sugarscape/components"
)

func TestOccupancyClaimRelease(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)

	o := newOccupancy(4)
	loc := components.Position{Row: 3, Col: 7}
	pos := loc
	entity := mapper.NewEntity(&pos)

	if o.Held(loc) {
		t.Error("expected empty occupancy")
	}

	o.Claim(loc, entity)
	if !o.Held(loc) {
		t.Error("expected cell held after claim")
	}
	if o.Len() != 1 {
		t.Errorf("expected 1 held cell, got %d", o.Len())
	}

	o.Release(loc, entity)
	if o.Held(loc) {
		t.Error("expected cell free after release")
	}
	if o.Len() != 0 {
		t.Errorf("expected 0 held cells, got %d", o.Len())
	}
}

func TestOccupancyDoubleClaimPanics(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)

	o := newOccupancy(4)
	loc := components.Position{Row: 1, Col: 1}
	pos := loc
	a := mapper.NewEntity(&pos)
	pos2 := loc
	b := mapper.NewEntity(&pos2)

	o.Claim(loc, a)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on claiming a held cell")
		}
	}()
	o.Claim(loc, b)
}

func TestOccupancyWrongReleasePanics(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)

	o := newOccupancy(4)
	loc := components.Position{Row: 1, Col: 1}
	pos := loc
	a := mapper.NewEntity(&pos)
	pos2 := components.Position{Row: 2, Col: 2}
	b := mapper.NewEntity(&pos2)

	o.Claim(loc, a)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on releasing a cell held by another entity")
		}
	}()
	o.Release(loc, b)
}

func TestOccupancyReleaseUnheldPanics(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)

	o := newOccupancy(4)
	pos := components.Position{Row: 5, Col: 5}
	a := mapper.NewEntity(&pos)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on releasing an unheld cell")
		}
	}()
	o.Release(pos, a)
}
