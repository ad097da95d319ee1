// Package pkg provides the core libraries for Swiss grid generation.
//
// # Overview
//
// Swissgrid computes modular grid layouts for A-series pages following
// Müller-Brockmann's Grid Systems in Graphic Design (1981). The pkg
// directory is organized along the data flow:
//
//	Format + orientation + grid shape
//	         ↓
//	    [grid] package (page geometry, margins, baseline rhythm, typography)
//	         ↓
//	    [render] package (JSON summary, text sheet, SVG, PDF)
//	         ↓
//	    [export] package (artifact files on disk)
//	         ↓
//	    [deploy] package (optional SFTP publishing)
//
// # Quick Start
//
// Compute a grid and write its artifacts:
//
//	spec, err := grid.Build(grid.Params{
//	    Format:       grid.FormatA4,
//	    Orientation:  grid.Portrait,
//	    Columns:      9,
//	    Rows:         9,
//	    MarginMethod: grid.Progressive,
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := export.Write("out", spec)
//
// # Supporting Packages
//
// [errors] - Structured errors with stable machine-readable codes.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// [observability] - Optional hooks for instrumenting export and deploy
// operations without binding to a metrics backend.
//
// [errors]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/observability
// [grid]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/grid
// [render]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/render
// [export]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/export
// [deploy]: https://pkg.go.dev/github.com/longplay45/swissgrid/pkg/deploy
package pkg
