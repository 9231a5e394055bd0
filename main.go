package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/sugarscape/config"
	"github.com/pthm-cable/sugarscape/sim"
	"github.com/pthm-cable/sugarscape/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	steps := flag.Int("steps", 500, "Number of simulation steps to run")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config snapshot, and final state")
	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	engine, err := sim.New(cfg, rngSeed)
	if err != nil {
		slog.Error("failed to construct engine", "error", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"grid", cfg.Grid.Size,
		"agents", engine.Population(),
		"replace", cfg.Population.Replace,
		"steps", *steps,
	)

	collector := engine.Collector()
	for i := 0; i < *steps; i++ {
		population, err := engine.Step()
		if err != nil {
			slog.Error("step failed", "tick", engine.Tick(), "error", err)
			os.Exit(1)
		}

		if collector.ShouldFlush(engine.Tick()) {
			history := engine.History()
			start := len(history) - collector.WindowSteps()
			if start < 0 {
				start = 0
			}
			stats := collector.Flush(
				engine.Tick(),
				population,
				history[start:],
				engine.SugarLevels(),
				engine.Field().TotalLevel(),
				engine.Field().TotalCap(),
			)

			if *logStats {
				stats.LogStats()
			}
			if err := out.WriteStats(stats); err != nil {
				slog.Error("failed to write stats", "error", err)
				os.Exit(1)
			}
		}
	}

	if err := out.WriteHistory(engine.History()); err != nil {
		slog.Error("failed to write history", "error", err)
		os.Exit(1)
	}
	if err := out.WriteSnapshot(engine.Snapshot()); err != nil {
		slog.Error("failed to write snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("simulation complete",
		"ticks", engine.Tick(),
		"population", engine.Population(),
	)
}
