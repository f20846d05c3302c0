package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/bizreg/pkg/entity"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, active entities
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(18)
)

const (
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconNone    = "—"
)

// =============================================================================
// Status Output
// =============================================================================

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value; empty values render as a dash.
func printKeyValue(key, value string) {
	if value == "" {
		fmt.Println(styleKey.Render(key) + " " + StyleDim.Render(iconNone))
		return
	}
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + StyleLink.Render(cmd))
}

// =============================================================================
// Entity Output
// =============================================================================

// statusStyle colors a registry status: active entities green, the rest dim.
func statusStyle(status string) lipgloss.Style {
	if strings.EqualFold(status, "active") {
		return StyleSuccess
	}
	return StyleDim
}

// summaryTable renders search results as a bordered table.
func summaryTable(results []entity.Summary) string {
	rows := make([][]string, len(results))
	for i, s := range results {
		rows[i] = []string{s.ID, s.Name, s.Status}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("DOS ID", "Name", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 && row < len(results) {
				return statusStyle(results[row].Status)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// printRecord prints a detail record as aligned key/value lines.
func printRecord(r *entity.Record) {
	fmt.Println(StyleTitle.Render(r.Name))
	printKeyValue("DOS ID", r.RegistrationNumber)
	printKeyValue("Status", r.Status)
	printKeyValue("Type", r.EntityType)
	printKeyValue("Jurisdiction", r.State)
	printKeyValue("Registered", entity.Deref(r.DateRegistered))
	printKeyValue("Inactive since", entity.Deref(r.InactiveDate))
	printKeyValue("Principal office", r.PrincipalAddress)
	printKeyValue("CEO", r.CEOName)
	printKeyValue("CEO address", r.CEOAddress)
	printKeyValue("Process served to", r.SOPName)
	printKeyValue("Process address", r.SOPAddress)
	printKeyValue("Registered agent", entity.Deref(r.AgentName))
	printKeyValue("Agent address", entity.Deref(r.AgentAddress))
}
