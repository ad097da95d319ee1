package grid

import (
	"fmt"
	"math"
	"strings"
)

// OutputPaths names the files a spec's renderers write. The base name
// encodes every input parameter so downstream tooling can glob generated
// assets reliably.
type OutputPaths struct {
	JSON string
	TXT  string
	PDF  string
}

// Spec is the fully resolved, immutable grid specification for one
// generation request. It is constructed once by [Build] from validated
// inputs and consumed by all renderers; no field is mutated afterwards.
type Spec struct {
	Format      Format
	Orientation Orientation

	// Page is the resolved page size in points, orientation applied.
	Page Size

	// BaselineUnit is the indivisible vertical rhythm unit in points.
	BaselineUnit float64

	// Margins are the final page margins. Top is an integer multiple of
	// BaselineUnit; Bottom is the remainder left after placing Rows
	// baseline-aligned cells, not an independently snapped value.
	Margins Margins

	// Gutters equal exactly one baseline unit on both axes.
	Gutters Gutters

	Columns int
	Rows    int

	// Module is the size of one grid cell in points.
	Module Size

	// UnitsPerCell is the number of baseline increments spanned by one
	// row's cell height (module height plus vertical gutter), always >= 2.
	UnitsPerCell int

	// ScaleFactor is the format-relative typographic scale. It derives
	// from the format alone and is unaffected by baseline overrides.
	ScaleFactor float64

	Typography Typography

	MarginMethod MarginMethod

	Outputs OutputPaths
}

// ContentWidth returns the net content width (page width minus left/right
// margins) in points.
func (s *Spec) ContentWidth() float64 {
	return s.Page.Width - s.Margins.Left - s.Margins.Right
}

// ContentHeight returns the aligned net content height: the exact vertical
// span of the module rows including interior gutters.
func (s *Spec) ContentHeight() float64 {
	return float64(s.Rows)*s.Module.Height + float64(s.Rows-1)*s.Gutters.Vertical
}

// CellHeight returns one row's cell height (module plus vertical gutter),
// an exact multiple of the baseline unit.
func (s *Spec) CellHeight() float64 {
	return float64(s.UnitsPerCell) * s.BaselineUnit
}

// BaseName returns the shared stem of the output file names:
// {format}_{orientation}_{cols}x{rows}_method{id}_baseline{unit}pt_grid.
func (s *Spec) BaseName() string {
	return fmt.Sprintf("%s_%s_%dx%d_method%d_baseline%.0fpt_grid",
		strings.ToLower(string(s.Format)), s.Orientation,
		s.Columns, s.Rows, int(s.MarginMethod), s.BaselineUnit)
}

// round3 rounds to three decimal places, the fixed precision of all numeric
// fields in the summary record.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
