package grid

import (
	"fmt"

	"github.com/longplay45/swissgrid/pkg/errors"
)

// MarginMethod selects one of the three canonical margin constructions.
// The set is closed: each variant carries its own pure computation and the
// ratio families are fixed design choices, not configurable weights.
type MarginMethod int

// Margin methods, identified by the ids used on the command line and in the
// summary record.
const (
	// Progressive produces a 1:2:2:3 top:left:right:bottom ratio. The
	// weight shifts toward the bottom of the page, the contemporary Swiss
	// default.
	Progressive MarginMethod = 1

	// VanDeGraaf adapts the Van de Graaf canon as baseline multiples:
	// left 1, top 2, right 1.5, bottom 3.
	VanDeGraaf MarginMethod = 2

	// GridBased sets all four margins to one baseline multiple, making
	// margins structurally indistinguishable from gutters.
	GridBased MarginMethod = 3
)

// ParseMarginMethod resolves a method id.
func ParseMarginMethod(id int) (MarginMethod, error) {
	m := MarginMethod(id)
	if !m.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidMarginMethod,
			"unsupported margin method: %d (use: 1, 2, or 3)", id)
	}
	return m, nil
}

// Valid reports whether the method is one of the three canonical variants.
func (m MarginMethod) Valid() bool {
	return m >= Progressive && m <= GridBased
}

// Label returns the human-readable method name used in summaries.
func (m MarginMethod) Label() string {
	switch m {
	case Progressive:
		return "Progressive (1:2:2:3)"
	case VanDeGraaf:
		return "Van de Graaf (page/9)"
	case GridBased:
		return "Grid-based (baseline multiples)"
	}
	return fmt.Sprintf("Method %d", int(m))
}

// Margins holds the four page margins in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Gutters holds the spacing between adjacent modules in points.
type Gutters struct {
	Horizontal float64
	Vertical   float64
}

// Compute produces the provisional margins and gutters for a page.
//
// The page size and module counts are part of the strategy contract even
// though the canonical ratio methods derive margins from the baseline unit
// alone. All methods return gutters of exactly one baseline unit: gutters
// always equal the unscaled rhythm, independent of strategy.
func (m MarginMethod) Compute(baselineUnit float64, page Size, cols, rows int, baselineMultiple float64) (Margins, Gutters) {
	_ = page
	_, _ = cols, rows

	g := Gutters{Horizontal: baselineUnit, Vertical: baselineUnit}
	u := baselineUnit * baselineMultiple

	switch m {
	case VanDeGraaf:
		return Margins{Top: 2 * u, Bottom: 3 * u, Left: 1 * u, Right: 1.5 * u}, g
	case GridBased:
		return Margins{Top: u, Bottom: u, Left: u, Right: u}, g
	default: // Progressive
		return Margins{Top: 1 * u, Bottom: 3 * u, Left: 2 * u, Right: 2 * u}, g
	}
}
