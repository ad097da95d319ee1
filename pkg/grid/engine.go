package grid

import (
	"math"

	"github.com/longplay45/swissgrid/pkg/errors"
)

// Params are the validated inputs to one engine invocation.
type Params struct {
	Format       Format
	Orientation  Orientation
	Columns      int
	Rows         int
	MarginMethod MarginMethod

	// BaselineOverride replaces the format-derived baseline unit when
	// positive. It changes rhythm only: the typographic scale factor stays
	// format-derived.
	BaselineOverride float64
}

// Build resolves a complete grid specification from the given parameters.
//
// The computation is a linear chain of pure steps: validate, resolve page
// size, compute the scale factor and baseline unit, run the margin strategy,
// snap the horizontal margins to the baseline grid, size the module rows to
// integer baseline multiples, re-derive the bottom margin from the aligned
// content height, and scale the typography system.
//
// Margin snapping rounds to the nearest baseline multiple with ties away
// from zero (math.Round). Rows never span fewer than two baseline units;
// when the floor division would go below that, the row height is pinned and
// the surplus ends up in the bottom margin. This legibility floor is a
// deliberate policy, not a rounding artifact.
//
// Build returns a validation-class error for unsupported inputs and a
// degeneracy-class error when the requested grid cannot fit the page. It
// never returns a partially constructed spec.
func Build(p Params) (*Spec, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	page := p.Format.Size(p.Orientation)
	scale := ScaleFactor(p.Format, p.Orientation)

	unit := p.BaselineOverride
	if unit == 0 {
		unit = ReferenceBaseline * scale
	}

	margins, gutters := p.MarginMethod.Compute(unit, page, p.Columns, p.Rows, 1)

	// Snap top and bottom to the baseline grid. Left/right stay as the
	// strategy proposed them: only the vertical axis carries the rhythm.
	margins.Top = snap(margins.Top, unit)
	margins.Bottom = snap(margins.Bottom, unit)

	netWidth := page.Width - margins.Left - margins.Right
	netHeight := page.Height - margins.Top - margins.Bottom

	moduleWidth := (netWidth - float64(p.Columns-1)*gutters.Horizontal) / float64(p.Columns)
	if moduleWidth <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid,
			"grid too dense: %d columns leave a module width of %.3fpt on a %.3fpt page",
			p.Columns, moduleWidth, page.Width)
	}

	totalUnits := math.Round(netHeight / unit)
	unitsPerCell := int(totalUnits / float64(p.Rows))
	if unitsPerCell < 2 {
		unitsPerCell = 2
	}

	moduleHeight := float64(unitsPerCell)*unit - gutters.Vertical
	if moduleHeight <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid,
			"grid too dense: %d rows leave a module height of %.3fpt", p.Rows, moduleHeight)
	}

	// The aligned content height replaces the provisional one, and the
	// bottom margin absorbs whatever the integer cell heights left over.
	alignedHeight := float64(p.Rows)*moduleHeight + float64(p.Rows-1)*gutters.Vertical
	margins.Bottom = page.Height - margins.Top - alignedHeight
	if margins.Bottom < 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid,
			"grid too dense: %d rows of %d baseline units overflow the page by %.3fpt",
			p.Rows, unitsPerCell, -margins.Bottom)
	}

	s := &Spec{
		Format:       p.Format,
		Orientation:  p.Orientation,
		Page:         page,
		BaselineUnit: unit,
		Margins:      margins,
		Gutters:      gutters,
		Columns:      p.Columns,
		Rows:         p.Rows,
		Module:       Size{Width: moduleWidth, Height: moduleHeight},
		UnitsPerCell: unitsPerCell,
		ScaleFactor:  scale,
		Typography:   ScaleTypography(scale, unit, p.Format),
		MarginMethod: p.MarginMethod,
	}
	base := s.BaseName()
	s.Outputs = OutputPaths{
		JSON: base + ".json",
		TXT:  base + ".txt",
		PDF:  base + ".pdf",
	}
	return s, nil
}

// snap rounds v to the nearest multiple of unit. Ties round away from zero
// (math.Round), the convention the summary record and tests rely on.
func snap(v, unit float64) float64 {
	return math.Round(v/unit) * unit
}

func validate(p Params) error {
	if !p.Format.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format: %s (use: A0, A1, A2, A3, A4, A5, A6)", p.Format)
	}
	if !p.Orientation.Valid() {
		return errors.New(errors.ErrCodeInvalidOrientation,
			"unsupported orientation: %s (use: portrait or landscape)", p.Orientation)
	}
	if !p.MarginMethod.Valid() {
		return errors.New(errors.ErrCodeInvalidMarginMethod,
			"unsupported margin method: %d (use: 1, 2, or 3)", int(p.MarginMethod))
	}
	if p.Columns < 1 || p.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGrid,
			"grid dimensions must be positive integers, got %dx%d", p.Columns, p.Rows)
	}
	if p.BaselineOverride < 0 {
		return errors.New(errors.ErrCodeInvalidBaseline,
			"baseline override must be positive, got %.3f", p.BaselineOverride)
	}
	return nil
}
