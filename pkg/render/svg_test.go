package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/longplay45/swissgrid/pkg/grid"
)

func TestModuleGridSVGStructure(t *testing.T) {
	s := referenceSpec(t)
	svg := ModuleGridSVG(s)

	if !bytes.HasPrefix(svg, []byte(`<?xml version="1.0" encoding="UTF-8"?>`)) {
		t.Error("missing XML declaration")
	}
	if !bytes.HasSuffix(svg, []byte("</svg>")) {
		t.Error("unterminated document")
	}

	// One rect per module plus pattern tile, background, page boundary, and
	// content area.
	if got, want := bytes.Count(svg, []byte("<rect")), s.Columns*s.Rows+4; got != want {
		t.Errorf("rect count = %d, want %d", got, want)
	}

	// Four margin labels.
	if got := bytes.Count(svg, []byte("<text")); got != 4 {
		t.Errorf("text count = %d, want 4", got)
	}
	if !bytes.Contains(svg, []byte(`transform="rotate(-90,`)) {
		t.Error("left margin label not rotated")
	}
	if !bytes.Contains(svg, []byte("24.0pt")) {
		t.Error("margin label value missing")
	}
}

func TestModuleGridSVGCellPlacement(t *testing.T) {
	s := referenceSpec(t)
	svg := string(ModuleGridSVG(s))

	// First cell sits at the margin origin.
	if !strings.Contains(svg, `<rect x="24.000" y="12.000" width="50.142" height="72.000"`) {
		t.Error("first cell not at margin origin")
	}
	// Second column starts one module plus one gutter to the right.
	if !strings.Contains(svg, `<rect x="86.142" y="12.000"`) {
		t.Error("second column misplaced")
	}
}

func TestBaselineGridSVGLineRhythm(t *testing.T) {
	s := referenceSpec(t)
	out := BaselineGridSVG(s)

	// 744pt of content span at a 12pt unit: 63 lines inclusive.
	if got := bytes.Count(out, []byte("<line")); got != 63 {
		t.Errorf("line count = %d, want 63", got)
	}
	// Every fourth line emphasized: lines 0, 4, ..., 60.
	if got := bytes.Count(out, []byte(`stroke="magenta"`)); got != 16 {
		t.Errorf("emphasized line count = %d, want 16", got)
	}
	if got := bytes.Count(out, []byte(`stroke="blue"`)); got != 63-16 {
		t.Errorf("regular line count = %d, want %d", got, 63-16)
	}
	if !bytes.Contains(out, []byte("Baseline grid: 12.0pt")) {
		t.Error("unit label missing")
	}
}

func TestBaselineGridSVGFirstLineOnTopMargin(t *testing.T) {
	s := referenceSpec(t)
	out := string(BaselineGridSVG(s))

	if !strings.Contains(out, `<line x1="24.000" y1="12.000" x2="571.276" y2="12.000" stroke="magenta"`) {
		t.Error("first baseline not on the top margin or not emphasized")
	}
}

func TestSVGDeterministic(t *testing.T) {
	s := mustBuild(t, grid.Params{
		Format:       grid.FormatA2,
		Orientation:  grid.Landscape,
		Columns:      6,
		Rows:         4,
		MarginMethod: grid.VanDeGraaf,
	})

	if !bytes.Equal(ModuleGridSVG(s), ModuleGridSVG(s)) {
		t.Error("module grid SVG not deterministic")
	}
	if !bytes.Equal(BaselineGridSVG(s), BaselineGridSVG(s)) {
		t.Error("baseline grid SVG not deterministic")
	}
}
