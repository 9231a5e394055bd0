package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/sugarscape/components"
	"github.com/pthm-cable/sugarscape/config"
)

func TestRollTraitsRanges(t *testing.T) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(42))

	visions := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		tr := RollTraits(rng, cfg)

		if tr.Vision < 1 || tr.Vision > cfg.Agent.MaxVision {
			t.Fatalf("vision %d outside [1, %d]", tr.Vision, cfg.Agent.MaxVision)
		}
		if tr.Metabolism < 1 || tr.Metabolism >= cfg.Agent.MaxMetabolism {
			t.Fatalf("metabolism %f outside [1, %f)", tr.Metabolism, cfg.Agent.MaxMetabolism)
		}
		if tr.Lifespan < cfg.Agent.MinLifespan || tr.Lifespan > cfg.Agent.MaxLifespan {
			t.Fatalf("lifespan %d outside [%d, %d]", tr.Lifespan, cfg.Agent.MinLifespan, cfg.Agent.MaxLifespan)
		}
		visions[tr.Vision] = true
	}

	// Every vision value should show up over 1000 draws
	if len(visions) != cfg.Agent.MaxVision {
		t.Errorf("expected %d distinct vision values, saw %d", cfg.Agent.MaxVision, len(visions))
	}
}

func TestRollSugarRange(t *testing.T) {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		s := RollSugar(rng, cfg)
		if s < cfg.Agent.MinSugar || s >= cfg.Agent.MaxSugar {
			t.Fatalf("sugar %f outside [%f, %f)", s, cfg.Agent.MinSugar, cfg.Agent.MaxSugar)
		}
	}
}

func TestMetabolize(t *testing.T) {
	a := components.Agent{Sugar: 10, Age: 5}
	tr := components.Traits{Metabolism: 2.5}

	Metabolize(&a, &tr, 4)

	if a.Sugar != 11.5 {
		t.Errorf("expected sugar 11.5, got %f", a.Sugar)
	}
	if a.Age != 6 {
		t.Errorf("expected age 6, got %d", a.Age)
	}
}

func TestStarving(t *testing.T) {
	tests := []struct {
		sugar float64
		want  bool
	}{
		{10, false},
		{0.1, false},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		a := components.Agent{Sugar: tt.sugar}
		if got := Starving(&a); got != tt.want {
			t.Errorf("Starving(sugar=%f) = %v, want %v", tt.sugar, got, tt.want)
		}
	}
}

func TestOld(t *testing.T) {
	tr := components.Traits{Lifespan: 80}

	tests := []struct {
		age  int
		want bool
	}{
		{0, false},
		{79, false},
		{80, false},
		{81, true},
	}

	for _, tt := range tests {
		a := components.Agent{Age: tt.age}
		if got := Old(&a, &tr); got != tt.want {
			t.Errorf("Old(age=%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}
