package grid

import (
	"testing"

	"github.com/longplay45/swissgrid/pkg/errors"
)

func TestMarginRatios(t *testing.T) {
	const unit = 12.0
	page := FormatA4.Size(Portrait)

	tests := []struct {
		name     string
		method   MarginMethod
		multiple float64
		want     Margins
	}{
		{
			name:     "progressive 1x",
			method:   Progressive,
			multiple: 1,
			want:     Margins{Top: 12, Bottom: 36, Left: 24, Right: 24},
		},
		{
			name:     "progressive 2x",
			method:   Progressive,
			multiple: 2,
			want:     Margins{Top: 24, Bottom: 72, Left: 48, Right: 48},
		},
		{
			name:     "van de graaf 1x",
			method:   VanDeGraaf,
			multiple: 1,
			want:     Margins{Top: 24, Bottom: 36, Left: 12, Right: 18},
		},
		{
			name:     "grid based 1x",
			method:   GridBased,
			multiple: 1,
			want:     Margins{Top: 12, Bottom: 12, Left: 12, Right: 12},
		},
		{
			name:     "grid based 3x",
			method:   GridBased,
			multiple: 3,
			want:     Margins{Top: 36, Bottom: 36, Left: 36, Right: 36},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tt.method.Compute(unit, page, 9, 9, tt.multiple)
			if got != tt.want {
				t.Errorf("Compute() margins = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGuttersAlwaysOneBaselineUnit(t *testing.T) {
	page := FormatA2.Size(Landscape)
	for _, m := range []MarginMethod{Progressive, VanDeGraaf, GridBased} {
		for _, unit := range []float64{6, 12, 17.5, 24} {
			_, g := m.Compute(unit, page, 4, 6, 2)
			if g.Horizontal != unit || g.Vertical != unit {
				t.Errorf("%s gutters = %+v with unit %v, want both exactly %v", m.Label(), g, unit, unit)
			}
		}
	}
}

func TestParseMarginMethod(t *testing.T) {
	for id := 1; id <= 3; id++ {
		m, err := ParseMarginMethod(id)
		if err != nil {
			t.Errorf("ParseMarginMethod(%d) unexpected error: %v", id, err)
		}
		if int(m) != id {
			t.Errorf("ParseMarginMethod(%d) = %v", id, m)
		}
	}

	for _, id := range []int{0, 4, -1, 99} {
		_, err := ParseMarginMethod(id)
		if err == nil {
			t.Errorf("ParseMarginMethod(%d) expected error", id)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidMarginMethod) {
			t.Errorf("ParseMarginMethod(%d) code = %v, want INVALID_MARGIN_METHOD", id, errors.GetCode(err))
		}
	}
}

func TestMarginMethodLabels(t *testing.T) {
	tests := []struct {
		method MarginMethod
		want   string
	}{
		{Progressive, "Progressive (1:2:2:3)"},
		{VanDeGraaf, "Van de Graaf (page/9)"},
		{GridBased, "Grid-based (baseline multiples)"},
	}
	for _, tt := range tests {
		if got := tt.method.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
