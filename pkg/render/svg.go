package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/longplay45/swissgrid/pkg/grid"
)

// svgEpsilon absorbs floating-point drift when walking the baseline rhythm.
const svgEpsilon = 0.01

// ModuleGridSVG draws the modular structure: page boundary, dashed content
// area, one outlined rectangle per module, and the four margin values as
// rotated edge labels. Coordinates are emitted at fixed three-decimal
// precision so identical specs yield byte-identical documents.
func ModuleGridSVG(s *grid.Spec) []byte {
	w, h := s.Page.Width, s.Page.Height
	m := s.Margins
	modW, modH := s.Module.Width, s.Module.Height
	gutH, gutV := s.Gutters.Horizontal, s.Gutters.Vertical

	var b strings.Builder
	p := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	p(`<?xml version="1.0" encoding="UTF-8"?>`)
	p(`<svg width="%.3f" height="%.3f" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f">`, w, h, w, h)
	p(`  <defs>`)
	p(`    <pattern id="gridPattern" width="%.3f" height="%.3f" patternUnits="userSpaceOnUse">`, modW+gutH, modH+gutV)
	p(`      <rect x="0" y="0" width="%.3f" height="%.3f" fill="none" stroke="cyan" stroke-width="0.5" stroke-opacity="0.7"/>`, modW, modH)
	p(`    </pattern>`)
	p(`  </defs>`)
	p(`  <!-- Page background -->`)
	p(`  <rect width="100%%" height="100%%" fill="white"/>`)
	p(`  <!-- Page boundary -->`)
	p(`  <rect x="0" y="0" width="%.3f" height="%.3f" fill="none" stroke="gray" stroke-width="0.5"/>`, w, h)
	p(`  <!-- Content area boundary (dashed) -->`)
	p(`  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="blue" stroke-width="0.3" stroke-dasharray="2,2"/>`,
		m.Left, m.Top, w-m.Left-m.Right, h-m.Top-m.Bottom)

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Columns; c++ {
			x := m.Left + float64(c)*(modW+gutH)
			y := m.Top + float64(r)*(modH+gutV)
			p(`  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="cyan" stroke-width="0.5" stroke-opacity="0.7"/>`,
				x, y, modW, modH)
		}
	}

	p(`  <!-- Margin labels -->`)
	p(`  <text x="%.3f" y="%.3f" font-size="8" text-anchor="middle" transform="rotate(-90, %.3f, %.3f)" fill="gray">%.1fpt</text>`,
		m.Left/2, h/2, m.Left/2, h/2, m.Left)
	p(`  <text x="%.3f" y="%.3f" font-size="8" text-anchor="middle" transform="rotate(90, %.3f, %.3f)" fill="gray">%.1fpt</text>`,
		w-m.Right/2, h/2, w-m.Right/2, h/2, m.Right)
	p(`  <text x="%.3f" y="%.3f" font-size="8" text-anchor="middle" fill="gray">%.1fpt</text>`,
		w/2, m.Top/2+3, m.Top)
	p(`  <text x="%.3f" y="%.3f" font-size="8" text-anchor="middle" fill="gray">%.1fpt</text>`,
		w/2, h-m.Bottom/2+3, m.Bottom)
	b.WriteString("</svg>")

	return []byte(b.String())
}

// BaselineGridSVG draws the baseline rhythm across the content area: one
// horizontal line per baseline unit from the top margin down to the bottom
// margin, every fourth line emphasized in magenta, the rest in light blue.
func BaselineGridSVG(s *grid.Spec) []byte {
	w, h := s.Page.Width, s.Page.Height
	m := s.Margins
	unit := s.BaselineUnit

	var b strings.Builder
	p := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	p(`<?xml version="1.0" encoding="UTF-8"?>`)
	p(`<svg width="%.3f" height="%.3f" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f">`, w, h, w, h)
	p(`  <!-- Page background -->`)
	p(`  <rect width="100%%" height="100%%" fill="white"/>`)
	p(`  <!-- Margin boundaries -->`)
	p(`  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="lightgray" stroke-width="0.3"/>`,
		m.Left, m.Top, w-m.Left-m.Right, h-m.Top-m.Bottom)
	p(`  <!-- Baseline grid -->`)

	for y := m.Top; y <= h-m.Bottom+svgEpsilon; y += unit {
		lineNum := int(math.Round((y - m.Top) / unit))
		color, width, opacity := "blue", 0.15, 0.3
		if lineNum%4 == 0 {
			color, width, opacity = "magenta", 0.3, 0.6
		}
		p(`  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.1f"/>`,
			m.Left, y, w-m.Right, y, color, width, opacity)
	}

	p(`  <text x="%.3f" y="%.3f" font-size="8" fill="gray">Baseline grid: %.1fpt</text>`,
		m.Left+10, m.Top-5, unit)
	b.WriteString("</svg>")

	return []byte(b.String())
}
