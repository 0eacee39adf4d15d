// Command expectdemo assembles a World with example physics components and
// simulates a few steps. Run it with -violate to watch a missing expectation
// stop the program.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/oriumgames/expects"
	"github.com/oriumgames/expects/ecs"
	"github.com/oriumgames/expects/example/physics"
	"github.com/oriumgames/expects/example/vehicle"
)

// config is read from the environment.
type config struct {
	// Validate activates the expects plugin. Production assemblies turn it off.
	Validate  bool   `env:"EXPECTS_VALIDATE" envDefault:"true"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "expectdemo: parse environment: %v\n", err)
		os.Exit(1)
	}

	var steps int
	var violate bool
	flag.IntVar(&steps, "steps", 3, "number of simulation steps")
	flag.BoolVar(&violate, "violate", false, "spawn a body without its expected components")
	flag.Parse()

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	w := assemble(cfg, logger)
	run(w, logger, steps, violate)
}

// assemble builds the World, activating validation when configured.
func assemble(cfg config, logger *slog.Logger) *ecs.World {
	b := ecs.NewBuilder().Logger(logger)
	if cfg.Validate {
		b.Plugin(expects.Plugin{})
	}
	w := b.Init()
	logger.Info("world assembled", "validate", cfg.Validate, "plugins", w.Plugins())
	return w
}

func run(w *ecs.World, logger *slog.Logger, steps int, violate bool) {
	car := w.Spawn(
		&physics.Position{},
		&physics.Velocity{},
		&physics.Body{Mass: 1200},
		&vehicle.Wheel{Radius: 0.35},
		&vehicle.Car{Heading: mgl64.Vec3{1, 0, 0}},
	)
	logger.Debug("spawned car", "entity", w.Describe(car))
	w.Spawn(&physics.Position{Vec3: mgl64.Vec3{0, 10, 0}}, &physics.Anchor{})

	if violate {
		logger.Warn("spawning a body without Position or Velocity")
		w.Spawn(&physics.Body{Mass: 1})
	}

	vehicle.Drive(w, car, 20)
	for i := 0; i < steps; i++ {
		moved := physics.Integrate(w, 0.05)
		pos := ecs.Get[physics.Position](w, car)
		logger.Info("step", "n", i+1, "moved", moved, "car", pos.Vec3)
	}
}

// newLogger creates a slog.Logger writing to outW with the given level and
// format ("text" or "json").
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
