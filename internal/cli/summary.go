package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/longplay45/swissgrid/pkg/grid"
	"github.com/longplay45/swissgrid/pkg/render"
)

// printSummary displays the full grid summary as a sequence of styled
// panels mirroring the structure of the text artifact.
func printSummary(sum render.Summary) {
	fmt.Println(panel("Settings", settingsBody(sum), colorBlue))
	printNewline()
	fmt.Println(panel("Page Dimensions", pageBody(sum), colorBlue))
	printNewline()
	fmt.Println(panel("Grid & Margins", gridBody(sum), colorBlue))
	printNewline()
	fmt.Println(panel("Typography System", typographyTable(sum), colorCyan))
	printNewline()
	fmt.Println(panel("Generated Files", outputsBody(sum), colorGreen))
	printNewline()
	fmt.Println(panel("Swiss Design Principles", principlesBody(sum), colorDim))
}

func settingsBody(sum render.Summary) string {
	rows := []string{
		keyValue("Orientation", sum.Settings.Orientation),
		keyValue("Margin method", sum.Settings.MarginMethod),
		keyValue("Grid", fmt.Sprintf("%d cols × %d rows", sum.Settings.GridCols, sum.Settings.GridRows)),
	}
	return strings.Join(rows, "\n")
}

func pageBody(sum render.Summary) string {
	rows := []string{
		keyValue("Format", sum.Format),
		keyValue("Page size", fmt.Sprintf("%.1f × %.1f pt", sum.PageSizePt.Width, sum.PageSizePt.Height)),
		keyValue("Content area", fmt.Sprintf("%.3f × %.3f pt", sum.ContentArea.Width, sum.ContentArea.Height)),
		keyValue("Module size", fmt.Sprintf("%.3f × %.3f pt (ratio: %.2f)", sum.Module.Width, sum.Module.Height, sum.Module.AspectRatio)),
		keyValue("Scale factor", fmt.Sprintf("%.3f× (relative to A4)", sum.Grid.ScaleFactor)),
	}
	return strings.Join(rows, "\n")
}

func gridBody(sum render.Summary) string {
	m := sum.Grid.Margins
	cellHeight := float64(sum.Grid.BaselineUnitsPerCell) * sum.Grid.GridUnit
	rows := []string{
		keyValue("Baseline grid", fmt.Sprintf("%.3f pt", sum.Grid.GridUnit)),
		keyValue("Horizontal gutter", fmt.Sprintf("%.3f pt", sum.Grid.GridMarginHorizontal)),
		keyValue("Vertical gutter", fmt.Sprintf("%.3f pt", sum.Grid.GridMarginVertical)),
		keyValue("Cell height", fmt.Sprintf("%.3f pt (%d baseline units)", cellHeight, sum.Grid.BaselineUnitsPerCell)),
		keyValue("Margins", fmt.Sprintf("T: %.3f | B: %.3f | L: %.3f | R: %.3f", m.Top, m.Bottom, m.Left, m.Right)),
		keyValue("Margin ratio", fmt.Sprintf("%.1f:%.1f:%.1f", m.Left/m.Top, m.Bottom/m.Top, m.Top/m.Top)),
	}
	return strings.Join(rows, "\n")
}

func typographyTable(sum render.Summary) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	rows := [][]string{}
	for _, name := range grid.StyleOrder {
		st, ok := sum.Typography.Styles[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			strings.ToUpper(name[:1]) + name[1:],
			fmt.Sprintf("%.3f pt", st.Size),
			fmt.Sprintf("%.3f pt", st.Leading),
			st.Weight,
			st.Alignment,
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Style", "Size", "Leading", "Weight", "Alignment").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Bold(true)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

func outputsBody(sum render.Summary) string {
	rows := []string{
		keyValue("Grid JSON", sum.Outputs.GridJSON),
		keyValue("Grid TXT", sum.Outputs.GridTXT),
	}
	if sum.Outputs.BaselineGridPDF != "" {
		rows = append(rows, keyValue("Baseline grid PDF", sum.Outputs.BaselineGridPDF))
	}
	return strings.Join(rows, "\n")
}

func principlesBody(sum render.Summary) string {
	rows := []string{
		StyleDim.Render(sum.Principles.Reference),
		StyleDim.Render("✓ " + sum.Principles.BaselineAlignment),
		StyleDim.Render("✓ " + sum.Principles.ModularConsistency),
		StyleDim.Render("✓ " + sum.Principles.Scalability),
	}
	return strings.Join(rows, "\n")
}

