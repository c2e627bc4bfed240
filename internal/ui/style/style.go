// Package style provides shared UI styling primitives, colors and icons
// for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#111827")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
