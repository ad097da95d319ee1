package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/grid"
)

// Wizard styles
var (
	wizardSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorBlue)
	wizardNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	wizardDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// maxGridDimension bounds the wizard's column and row pickers.
const maxGridDimension = 13

// wizardStep enumerates the parameter selection screens in order.
type wizardStep int

const (
	stepFormat wizardStep = iota
	stepOrientation
	stepColumns
	stepRows
	stepMethod
	stepDone
)

// WizardModel is the bubbletea model for the parameter selection wizard.
// Each step presents one list; enter advances, esc cancels.
type WizardModel struct {
	step     wizardStep
	cursor   map[wizardStep]int
	Canceled bool
}

// NewWizardModel creates a wizard with the reference defaults preselected:
// A4, portrait, 9x9, progressive margins.
func NewWizardModel() WizardModel {
	return WizardModel{
		step: stepFormat,
		cursor: map[wizardStep]int{
			stepFormat:      4, // A4 within A0..A6
			stepOrientation: 0,
			stepColumns:     8, // 9 columns
			stepRows:        8,
			stepMethod:      0,
		},
	}
}

func (m WizardModel) Init() tea.Cmd {
	return nil
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	options := len(m.options())
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Canceled = true
		return m, tea.Quit
	case "up", "k":
		m.cursor[m.step] = (m.cursor[m.step] - 1 + options) % options
	case "down", "j":
		m.cursor[m.step] = (m.cursor[m.step] + 1) % options
	case "enter":
		m.step++
		if m.step == stepDone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m WizardModel) View() string {
	if m.step == stepDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title()))
	b.WriteString("\n")
	b.WriteString(wizardDimStyle.Render("↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n\n")

	for i, option := range m.options() {
		if i == m.cursor[m.step] {
			b.WriteString("  " + iconArrow + " " + wizardSelectedStyle.Render(" "+option+" "))
		} else {
			b.WriteString("    " + wizardNormalStyle.Render(option))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(wizardDimStyle.Render(fmt.Sprintf("  step %d of %d", int(m.step)+1, int(stepDone))))
	return b.String()
}

func (m WizardModel) title() string {
	switch m.step {
	case stepFormat:
		return "Select Page Format"
	case stepOrientation:
		return "Select Orientation"
	case stepColumns:
		return fmt.Sprintf("Select Number of Columns (1-%d)", maxGridDimension)
	case stepRows:
		return fmt.Sprintf("Select Number of Rows (1-%d)", maxGridDimension)
	default:
		return "Select Margin Method"
	}
}

func (m WizardModel) options() []string {
	switch m.step {
	case stepFormat:
		opts := make([]string, 0, len(grid.Formats()))
		for _, f := range grid.Formats() {
			s := f.Portrait()
			opts = append(opts, fmt.Sprintf("%s - %.0f × %.0f mm", f, s.Width/ptPerMM, s.Height/ptPerMM))
		}
		return opts
	case stepOrientation:
		return []string{
			"Portrait - Vertical layout",
			"Landscape - Horizontal layout",
		}
	case stepColumns, stepRows:
		opts := make([]string, maxGridDimension)
		for i := range opts {
			opts[i] = fmt.Sprintf("%d", i+1)
		}
		return opts
	default:
		return []string{
			"Progressive margins (1:2:2:3 ratio)",
			"Van de Graaf ratios (page/9)",
			"Grid-based margins (baseline multiples)",
		}
	}
}

// Params assembles the selected engine parameters. Only valid after the
// wizard ran to completion.
func (m WizardModel) Params() grid.Params {
	orientation := grid.Portrait
	if m.cursor[stepOrientation] == 1 {
		orientation = grid.Landscape
	}
	return grid.Params{
		Format:       grid.Formats()[m.cursor[stepFormat]],
		Orientation:  orientation,
		Columns:      m.cursor[stepColumns] + 1,
		Rows:         m.cursor[stepRows] + 1,
		MarginMethod: grid.MarginMethod(m.cursor[stepMethod] + 1),
	}
}

// runWizard runs the interactive wizard and returns the selected
// parameters. Cancellation maps to context.Canceled so main can exit with
// the conventional SIGINT status.
func runWizard() (grid.Params, error) {
	final, err := tea.NewProgram(NewWizardModel()).Run()
	if err != nil {
		return grid.Params{}, errors.Wrap(err, errors.ErrCodeInternal, "interactive wizard failed")
	}

	model, ok := final.(WizardModel)
	if !ok {
		return grid.Params{}, errors.New(errors.ErrCodeInternal, "interactive wizard returned unexpected model")
	}
	if model.Canceled {
		return grid.Params{}, context.Canceled
	}
	return model.Params(), nil
}
