// Package pkg provides the core libraries for blockchart.
//
// # Overview
//
// blockchart turns a list of labelled values into a block chart: one
// rectangle per value, stacked vertically in a fixed-width frame, with
// heights proportional to the values. The pkg directory is organized into
// these areas:
//
//  1. [render/blocks] - Domain logic (layout stages, styles, output sinks)
//  2. [pipeline] - Orchestration (validate → layout → render, with caching)
//  3. [cache] - Layout and artifact storage (file, Redis, no-op)
//  4. [io] - Reading data files and writing layouts
//  5. [config] - TOML configuration shared by the CLI and the server
//
// # Architecture
//
// The typical data flow:
//
//	Data file (JSON, TOML, YAML)
//	         ↓
//	    [io] package (decode values)
//	         ↓
//	    [render/blocks/layout] package (geometry + stack ordering)
//	         ↓
//	    [render/blocks/sink] package (SVG/PNG/PDF/JSON output)
//
// # Quick Start
//
//	data := []layout.Datum{
//		{Value: 50, Name: "Rent", Color: "#e15759"},
//		{Value: 20, Name: "Food"},
//		{Value: 10, Name: "Fun"},
//	}
//
//	opts := pipeline.Options{StackType: "stable-balanced", Seed: layout.Seed(42)}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, data, opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("chart.svg", result.Artifacts["svg"], 0o644)
//
// Supporting packages:
//   - [errors]: coded errors with user messages and HTTP status mapping
//   - [observability]: hooks for layout, render, cache and HTTP events
//   - [random]: seeded random source shared by the layout stages
//   - [buildinfo]: version information injected at build time
package pkg
