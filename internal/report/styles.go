package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains styling for simulation output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Label     lipgloss.Style
	Card      lipgloss.Style
	Hidden    lipgloss.Style
	Action    lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	Push      lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates styles bound to r so that colour decisions follow the
// renderer's output rather than os.Stdout.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Card: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#A29BFE")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
