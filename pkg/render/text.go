package render

import (
	"fmt"
	"strings"

	"github.com/longplay45/swissgrid/pkg/grid"
)

// Text renders the summary record as a fixed-width plain-text sheet,
// suitable for printing or inclusion in documentation. The sheet carries
// exactly the values of the record, formatted to three decimal places.
func Text(sum Summary) []byte {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	sep := strings.Repeat("-", 70)

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("%s", rule)
	line("SWISS GRID SYSTEM - PARAMETERS")
	line("%s", rule)
	line("")

	line("SETTINGS")
	line("%s", sep)
	line("  Format:          %s", sum.Format)
	line("  Orientation:     %s", sum.Settings.Orientation)
	line("  Margin Method:   %s", sum.Settings.MarginMethod)
	line("  Grid:            %d cols × %d rows", sum.Settings.GridCols, sum.Settings.GridRows)
	line("")

	line("PAGE DIMENSIONS")
	line("%s", sep)
	line("  Page Size:       %.3f × %.3f pt", sum.PageSizePt.Width, sum.PageSizePt.Height)
	line("  Content Area:    %.3f × %.3f pt", sum.ContentArea.Width, sum.ContentArea.Height)
	line("  Module Size:     %.3f × %.3f pt", sum.Module.Width, sum.Module.Height)
	line("  Aspect Ratio:    %.3f", sum.Module.AspectRatio)
	line("  Scale Factor:    %.3f× (relative to A4)", sum.Grid.ScaleFactor)
	line("")

	line("GUTTER CONFIGURATION")
	line("%s", sep)
	line("  Baseline Grid:   %.3f pt", sum.Grid.GridUnit)
	line("  H. Gutter:       %.3f pt", sum.Grid.GridMarginHorizontal)
	line("  V. Gutter:       %.3f pt", sum.Grid.GridMarginVertical)
	cellHeight := float64(sum.Grid.BaselineUnitsPerCell) * sum.Grid.GridUnit
	line("  Cell Height:     %.3f pt (%d baseline units)", cellHeight, sum.Grid.BaselineUnitsPerCell)
	m := sum.Grid.Margins
	line("  Margins:         T:%.3f B:%.3f L:%.3f R:%.3f", m.Top, m.Bottom, m.Left, m.Right)
	line("")

	line("TYPOGRAPHY SYSTEM")
	line("%s", sep)
	line("  %-12s %-12s %-12s %-10s %s", "Style", "Size", "Leading", "Weight", "Alignment")
	line("  %s %s %s %s %s",
		strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 12),
		strings.Repeat("-", 10), strings.Repeat("-", 10))
	for _, name := range grid.StyleOrder {
		st, ok := sum.Typography.Styles[name]
		if !ok {
			continue
		}
		line("  %-12s %-12s %-12s %-10s %s",
			capitalize(name),
			fmt.Sprintf("%.3f pt", st.Size),
			fmt.Sprintf("%.3f pt", st.Leading),
			st.Weight, st.Alignment)
	}
	line("")

	line("SWISS DESIGN PRINCIPLES")
	line("%s", sep)
	line("  Reference:  %s", sum.Principles.Reference)
	line("  ✓ %s", sum.Principles.BaselineAlignment)
	line("  ✓ %s", sum.Principles.ModularConsistency)
	line("  ✓ %s", sum.Principles.Scalability)
	line("")

	line("OUTPUT FILES")
	line("%s", sep)
	line("  Grid JSON:   %s", sum.Outputs.GridJSON)
	line("  Grid TXT:    %s", sum.Outputs.GridTXT)
	line("  Grid PDF:    %s", sum.Outputs.BaselineGridPDF)
	line("")

	return []byte(b.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
