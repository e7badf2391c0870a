// Package style provides shared colors and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Circle  = "○"
)

// Program status styles used by the check command.
var (
	OK     = lipgloss.NewStyle().Foreground(Green)
	Failed = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
)

// Status renders an icon followed by label using the style matching ok.
func Status(ok bool, label string) string {
	if ok {
		return OK.Render(Check) + " " + label
	}
	return Failed.Render(Cross) + " " + label
}
