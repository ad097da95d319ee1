package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/longplay45/swissgrid/pkg/grid"
)

// ptPerMM converts PostScript points to millimeters.
const ptPerMM = 28.3465 / 10

// formatsCommand creates the formats command.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported page formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headerStyle := lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

			rows := [][]string{}
			for _, f := range grid.Formats() {
				s := f.Portrait()
				scale := grid.ScaleFactor(f, grid.Portrait)
				rows = append(rows, []string{
					string(f),
					fmt.Sprintf("%.0f × %.0f mm", s.Width/ptPerMM, s.Height/ptPerMM),
					fmt.Sprintf("%.3f × %.3f pt", s.Width, s.Height),
					fmt.Sprintf("%.3f×", scale),
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Format", "Size (mm)", "Size (pt)", "Scale vs A4").
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

			fmt.Println(t.Render())
			return nil
		},
	}
}
