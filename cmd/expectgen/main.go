// Command expectgen generates expects.Contract implementations from
// //ecs:expects directives.
//
// Annotate a component type with one or more directives naming the component
// types it expects:
//
//	//ecs:expects Position, Velocity
//	//ecs:expects github.com/acme/game/render.Sprite
//	type Body struct{ Mass float64 }
//
// and run the generator from the package directory, usually through
//
//	//go:generate go run github.com/oriumgames/expects/cmd/expectgen
//
// References may name a type of the same package, a type of an imported
// package through the file's import name, or a type by its full import path.
// Directives on one type are concatenated in order. A type carrying
// directives but naming no component types is an error.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// config holds settings taken from the go generate environment.
type config struct {
	// Package selects the package to scan when a directory holds several.
	Package string `env:"GOPACKAGE"`

	// File is the file holding the go:generate directive, used in logs.
	File string `env:"GOFILE"`

	Verbose bool `env:"EXPECTGEN_VERBOSE"`
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fatal(fmt.Errorf("parse environment: %w", err))
	}

	var dir, output, pkgName string
	flag.StringVar(&dir, "dir", ".", "package directory to scan")
	flag.StringVar(&output, "output", defaultOutput, "generated file name, relative to -dir")
	flag.StringVar(&pkgName, "package", cfg.Package, "package to scan when the directory holds several")
	flag.Parse()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	spec, err := parsePackage(dir, pkgName, filepath.Base(output))
	if err != nil {
		fatal(err)
	}

	outPath := output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dir, output)
	}

	if len(spec.Decls) == 0 {
		// Nothing declared: drop a stale file so removed contracts stop registering.
		if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
			fatal(fmt.Errorf("remove stale output: %w", err))
		}
		logger.Debug("expectgen: no directives found", "package", spec.Name, "source", cfg.File)
		return
	}

	src, err := render(spec, filepath.Base(outPath))
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		fatal(fmt.Errorf("write %s: %w", outPath, err))
	}
	logger.Debug("expectgen: wrote contracts",
		"package", spec.Name,
		"contracts", len(spec.Decls),
		"output", outPath,
		"source", cfg.File)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "expectgen: %v\n", err)
	os.Exit(1)
}
