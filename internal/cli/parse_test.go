package cli

import (
	"testing"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/grid"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		input   string
		cols    int
		rows    int
		wantErr bool
	}{
		{"9x9", 9, 9, false},
		{"2x4", 2, 4, false},
		{"12X8", 12, 8, false},
		{" 9x9 ", 9, 9, false},
		{"9", 0, 0, true},
		{"9x", 0, 0, true},
		{"x9", 0, 0, true},
		{"0x9", 0, 0, true},
		{"9x-1", 0, 0, true},
		{"axb", 0, 0, true},
		{"9x9x9", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cols, rows, err := parseGrid(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseGrid(%q) expected error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeInvalidGrid) {
					t.Errorf("error code = %v, want INVALID_GRID", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGrid(%q): %v", tt.input, err)
			}
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("parseGrid(%q) = %dx%d, want %dx%d", tt.input, cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestGenerateFlagsParams(t *testing.T) {
	flags := generateFlags{
		format:      "a3",
		orientation: "landscape",
		grid:        "6x8",
		margin:      2,
		baseline:    24,
	}

	p, err := flags.params()
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	want := grid.Params{
		Format:           grid.FormatA3,
		Orientation:      grid.Landscape,
		Columns:          6,
		Rows:             8,
		MarginMethod:     grid.VanDeGraaf,
		BaselineOverride: 24,
	}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestGenerateFlagsParamsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		flags generateFlags
		code  errors.Code
	}{
		{"bad format", generateFlags{format: "B4", orientation: "portrait", grid: "9x9", margin: 1}, errors.ErrCodeInvalidFormat},
		{"bad orientation", generateFlags{format: "A4", orientation: "diagonal", grid: "9x9", margin: 1}, errors.ErrCodeInvalidOrientation},
		{"bad margin", generateFlags{format: "A4", orientation: "portrait", grid: "9x9", margin: 7}, errors.ErrCodeInvalidMarginMethod},
		{"bad grid", generateFlags{format: "A4", orientation: "portrait", grid: "9", margin: 1}, errors.ErrCodeInvalidGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.params()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}
