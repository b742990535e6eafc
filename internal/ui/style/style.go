// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Block   = "█"
	Shade   = "░"
)

// BarPalette holds the colors assigned to resource bars. A resource's color
// is picked from this palette by hashing its name, so the same resource is
// painted the same way on every run.
var BarPalette = []lipgloss.Color{
	lipgloss.Color("#8B5CF6"),
	lipgloss.Color("#22A06B"),
	lipgloss.Color("#F59E0B"),
	lipgloss.Color("#2563EB"),
	lipgloss.Color("#D93025"),
	lipgloss.Color("#0D9488"),
	lipgloss.Color("#C026D3"),
	lipgloss.Color("#CA8A04"),
}
