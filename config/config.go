// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Resource   ResourceConfig   `yaml:"resource"`
	Population PopulationConfig `yaml:"population"`
	Agent      AgentConfig      `yaml:"agent"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// GridConfig holds the grid geometry and the capacity landscape.
type GridConfig struct {
	Size         int       `yaml:"size"`          // Side length of the square toroidal grid
	Peaks        [][2]int  `yaml:"peaks"`         // Sugar peak coordinates [row, col]
	CapacityBins []float64 `yaml:"capacity_bins"` // Decreasing distance edges for capacity tiers
}

// ResourceConfig holds regrowth parameters.
type ResourceConfig struct {
	GrowRate int `yaml:"grow_rate"` // Sugar added per cell per step, capped by capacity
}

// PopulationConfig holds initial population and replacement settings.
type PopulationConfig struct {
	NumAgents   int    `yaml:"num_agents"`
	StartingBox [2]int `yaml:"starting_box"` // [rows, cols] sub-rectangle from the origin; 0 0 = full grid
	Replace     bool   `yaml:"replace"`      // Spawn a new random agent whenever one dies
}

// AgentConfig holds the ranges agents roll their traits from at birth.
type AgentConfig struct {
	MaxVision     int     `yaml:"max_vision"`     // Vision drawn uniformly from [1, max_vision]
	MaxMetabolism float64 `yaml:"max_metabolism"` // Metabolism drawn uniformly from [1, max_metabolism)
	MinSugar      float64 `yaml:"min_sugar"`      // Initial sugar range
	MaxSugar      float64 `yaml:"max_sugar"`
	MinLifespan   int     `yaml:"min_lifespan"` // Lifespan drawn uniformly from [min, max]
	MaxLifespan   int     `yaml:"max_lifespan"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Steps per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	}
	if len(c.Grid.Peaks) != 2 {
		return fmt.Errorf("config: grid.peaks must list exactly two peaks, got %d", len(c.Grid.Peaks))
	}
	if len(c.Grid.CapacityBins) == 0 {
		return fmt.Errorf("config: grid.capacity_bins must not be empty")
	}
	for i := 1; i < len(c.Grid.CapacityBins); i++ {
		if c.Grid.CapacityBins[i] >= c.Grid.CapacityBins[i-1] {
			return fmt.Errorf("config: grid.capacity_bins must be strictly decreasing")
		}
	}
	if c.Resource.GrowRate < 0 {
		return fmt.Errorf("config: resource.grow_rate must not be negative, got %d", c.Resource.GrowRate)
	}
	if c.Population.NumAgents < 0 {
		return fmt.Errorf("config: population.num_agents must not be negative, got %d", c.Population.NumAgents)
	}
	if c.Population.StartingBox[0] < 0 || c.Population.StartingBox[1] < 0 {
		return fmt.Errorf("config: population.starting_box must not be negative")
	}
	if c.Agent.MaxVision < 1 {
		return fmt.Errorf("config: agent.max_vision must be at least 1, got %d", c.Agent.MaxVision)
	}
	if c.Agent.MaxMetabolism < 1 {
		return fmt.Errorf("config: agent.max_metabolism must be at least 1, got %g", c.Agent.MaxMetabolism)
	}
	if c.Agent.MinSugar > c.Agent.MaxSugar {
		return fmt.Errorf("config: agent sugar range inverted: [%g, %g]", c.Agent.MinSugar, c.Agent.MaxSugar)
	}
	if c.Agent.MinLifespan > c.Agent.MaxLifespan {
		return fmt.Errorf("config: agent lifespan range inverted: [%d, %d]", c.Agent.MinLifespan, c.Agent.MaxLifespan)
	}
	if c.Telemetry.StatsWindow < 1 {
		return fmt.Errorf("config: telemetry.stats_window must be at least 1, got %d", c.Telemetry.StatsWindow)
	}
	return nil
}

// StartingBoxDims returns the effective starting box dimensions.
// A zero entry means the full grid extent on that axis.
func (c *Config) StartingBoxDims() (rows, cols int) {
	rows, cols = c.Population.StartingBox[0], c.Population.StartingBox[1]
	if rows == 0 {
		rows = c.Grid.Size
	}
	if cols == 0 {
		cols = c.Grid.Size
	}
	return rows, cols
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
