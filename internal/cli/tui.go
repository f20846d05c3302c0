package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/bizreg/pkg/entity"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// SearchListModel - Interactive search result selection
// =============================================================================

// SearchListModel is the bubbletea model for picking one search result.
type SearchListModel struct {
	Results  []entity.Summary
	Query    string
	Cursor   int
	Selected *entity.Summary
	Height   int
	Offset   int
}

// NewSearchListModel creates a picker over results.
func NewSearchListModel(query string, results []entity.Summary) SearchListModel {
	return SearchListModel{
		Results: results,
		Query:   query,
		Height:  15,
	}
}

func (m SearchListModel) Init() tea.Cmd {
	return nil
}

func (m SearchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Results)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Results); n > 0 {
				m.Cursor = n - 1
				if m.Cursor >= m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Results) == 0 {
				return m, nil
			}
			selected := m.Results[m.Cursor]
			m.Selected = &selected
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SearchListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Results for %q", m.Query)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fetch record  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Results))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Results[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.ID, r.Name, r.Status})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "DOS ID", "Name", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Results) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col == 3 {
				base = statusStyle(m.Results[idx].Status)
			}
			if idx == m.Cursor {
				if col != 3 {
					base = base.Foreground(colorCyan)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Results))))

	return b.String()
}
