// Package style provides shared colours and icons for terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colours.
var (
	Accent = lipgloss.Color("#0052CC")
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
	Arrow   = "→"
	Dot     = "●"
)

// StateColor returns the colour used to render a Bitbucket build state keyword.
func StateColor(state string) lipgloss.Color {
	switch state {
	case "SUCCESSFUL":
		return Green
	case "FAILED":
		return Red
	default:
		return Yellow
	}
}
