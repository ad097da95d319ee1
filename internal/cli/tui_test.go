package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/longplay45/swissgrid/pkg/grid"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m WizardModel, keys ...string) WizardModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(WizardModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestWizardDefaults(t *testing.T) {
	// Accepting every step yields the reference configuration.
	m := step(t, NewWizardModel(), "enter", "enter", "enter", "enter", "enter")

	want := grid.Params{
		Format:       grid.FormatA4,
		Orientation:  grid.Portrait,
		Columns:      9,
		Rows:         9,
		MarginMethod: grid.Progressive,
	}
	if got := m.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
	if m.Canceled {
		t.Error("wizard reported cancellation")
	}
}

func TestWizardSelection(t *testing.T) {
	// A6 (down twice from A4), landscape, 2 columns, 4 rows, method 3.
	m := NewWizardModel()
	m = step(t, m, "down", "down", "enter") // format: A4 -> A5 -> A6
	m = step(t, m, "down", "enter")         // orientation: landscape
	m = step(t, m, "up", "up", "up", "up", "up", "up", "up", "enter") // columns: 9 -> 2
	m = step(t, m, "down", "down", "down", "down", "enter")           // rows: 9 -> 13
	m = step(t, m, "down", "down", "enter")                           // method: 3

	want := grid.Params{
		Format:       grid.FormatA6,
		Orientation:  grid.Landscape,
		Columns:      2,
		Rows:         13,
		MarginMethod: grid.GridBased,
	}
	if got := m.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
}

func TestWizardWrapsAround(t *testing.T) {
	// Five ups from A4 (index 4) wrap through A0 and land on A6 (index 6).
	m := step(t, NewWizardModel(), "up", "up", "up", "up", "up")
	if m.cursor[stepFormat] != 6 {
		t.Errorf("cursor = %d, want 6", m.cursor[stepFormat])
	}
}

func TestWizardCancel(t *testing.T) {
	m := step(t, NewWizardModel(), "esc")
	if !m.Canceled {
		t.Error("esc did not cancel the wizard")
	}

	m = step(t, NewWizardModel(), "enter", "q")
	if !m.Canceled {
		t.Error("q did not cancel the wizard")
	}
}

func TestWizardViewShowsSelection(t *testing.T) {
	view := NewWizardModel().View()
	if view == "" {
		t.Fatal("empty view")
	}
	for _, want := range []string{"Select Page Format", "A4", iconArrow} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
