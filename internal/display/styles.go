// Package display renders game state for terminals.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the styles used to render a game.
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	Actor     lipgloss.Style
	Mucked    lipgloss.Style
	Shown     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Box       lipgloss.Style
}

// Renderer formats game state with styles bound to one output.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer for w. With noColor every style renders as
// plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: newStyles(r)}
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Actor: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Mucked: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Shown: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
	}
}
