package cli

import (
	"strconv"
	"strings"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/grid"
)

// parseGrid parses a "NxM" grid dimension string (e.g. "9x9", "2x4") into
// columns and rows.
func parseGrid(s string) (cols, rows int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidGrid, "invalid grid '%s', use 'NxM' (e.g. 9x9, 2x4)", s)
	}

	cols, err = strconv.Atoi(parts[0])
	if err == nil {
		rows, err = strconv.Atoi(parts[1])
	}
	if err != nil || cols < 1 || rows < 1 {
		return 0, 0, errors.New(errors.ErrCodeInvalidGrid, "invalid grid '%s', use 'NxM' (e.g. 9x9, 2x4)", s)
	}
	return cols, rows, nil
}

// generateFlags carries the raw generate command flags before validation.
type generateFlags struct {
	format      string
	orientation string
	grid        string
	margin      int
	baseline    float64
	outputDir   string
	noPDF       bool
	withSVG     bool
}

// params resolves the flags into engine parameters. It does not fill in
// missing format or grid dimensions; callers decide whether to fall back to
// the interactive wizard.
func (f generateFlags) params() (grid.Params, error) {
	var p grid.Params

	format, err := grid.ParseFormat(f.format)
	if err != nil {
		return p, err
	}
	orientation, err := grid.ParseOrientation(f.orientation)
	if err != nil {
		return p, err
	}
	method, err := grid.ParseMarginMethod(f.margin)
	if err != nil {
		return p, err
	}
	cols, rows, err := parseGrid(f.grid)
	if err != nil {
		return p, err
	}

	return grid.Params{
		Format:           format,
		Orientation:      orientation,
		Columns:          cols,
		Rows:             rows,
		MarginMethod:     method,
		BaselineOverride: f.baseline,
	}, nil
}
