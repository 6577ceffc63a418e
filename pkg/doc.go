// Package pkg provides the libraries behind triangulator.
//
// # Overview
//
// Triangulator cuts photos into triangles and lays the triangles out on two
// square sheets. The pkg directory is organized by stage:
//
//  1. [geom], [mask], [grid] - Geometry kernel, mask registry and grid decomposition
//  2. [canvas], [piece] - Photo placement and piece extraction
//  3. [sheet] - RED and GREEN sheet assembly with overlays
//  4. [session], [pipeline] - Session state and orchestration (cut → sheets)
//  5. [cache], [io], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The data flow through triangulator:
//
//	Photo + placement
//	         ↓
//	    [canvas] package (compose onto the working canvas)
//	         ↓
//	    [grid] + [mask] packages (triangles at least 80% inside the mask)
//	         ↓
//	    [piece] package (cut, resize, rotate; ids mask*100+n)
//	         ↓
//	    [sheet] package (mapping tables, random fallback, overlays)
//	         ↓
//	    RED.png / GREEN.png
//
// # Quick Start
//
// Cut one photo and assemble both sheets:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/triangulator/pkg/cache"
//	    tio "github.com/matzehuels/triangulator/pkg/io"
//	    "github.com/matzehuels/triangulator/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, nil)
//	m, _ := pipeline.LoadManifest("session.toml")
//	res, err := runner.Execute(ctx, m)
//	for _, s := range res.Sheets {
//	    tio.ExportPNG(ctx, "sheet", s.Image, s.Sheet.Filename())
//	}
package pkg
