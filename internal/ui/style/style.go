// Package style holds the colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Plus    = "+"
	Minus   = "-"
)
