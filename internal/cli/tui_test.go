package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bizreg/pkg/entity"
)

func pickerResults(n int) []entity.Summary {
	out := make([]entity.Summary, n)
	for i := range out {
		out[i] = entity.Summary{State: "NY", Name: "ENTITY " + string(rune('A'+i)), Status: "Active", ID: string(rune('1' + i))}
	}
	return out
}

func press(m SearchListModel, keys ...string) (SearchListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var model tea.Model
		model, cmd = m.Update(msg)
		m = model.(SearchListModel)
	}
	return m, cmd
}

func TestSearchListNavigation(t *testing.T) {
	m := NewSearchListModel("entity", pickerResults(3))

	m, _ = press(m, "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("cursor should stop at last row, got %d", m.Cursor)
	}

	m, _ = press(m, "k", "k", "k")
	if m.Cursor != 0 {
		t.Errorf("cursor should stop at first row, got %d", m.Cursor)
	}

	m, _ = press(m, "G")
	if m.Cursor != 2 {
		t.Errorf("G should jump to last row, got %d", m.Cursor)
	}
}

func TestSearchListSelect(t *testing.T) {
	m := NewSearchListModel("entity", pickerResults(3))

	m, cmd := press(m, "j", "enter")
	if m.Selected == nil || m.Selected.ID != "2" {
		t.Fatalf("Selected = %+v", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestSearchListQuitWithoutSelection(t *testing.T) {
	m := NewSearchListModel("entity", pickerResults(2))
	m, cmd := press(m, "esc")
	if m.Selected != nil {
		t.Error("quit should not select")
	}
	if cmd == nil {
		t.Error("esc should quit the program")
	}
}

func TestSearchListEmptyEnter(t *testing.T) {
	m := NewSearchListModel("nothing", nil)
	m, cmd := press(m, "enter")
	if m.Selected != nil || cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestSearchListScroll(t *testing.T) {
	m := NewSearchListModel("entity", pickerResults(10))
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = model.(SearchListModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	m, _ = press(m, "down", "down", "down", "down", "down", "down")
	if m.Cursor != 6 || m.Offset != 2 {
		t.Errorf("cursor=%d offset=%d, want 6/2", m.Cursor, m.Offset)
	}
}

func TestSearchListView(t *testing.T) {
	m := NewSearchListModel("entity", pickerResults(2))
	view := m.View()

	for _, want := range []string{`Results for "entity"`, "ENTITY A", "ENTITY B", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
