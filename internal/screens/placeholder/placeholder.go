package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/ui/theme"
)

// PlaceholderScreen stands in for a feature whose backing service is
// not configured, such as a sector with no LLM provider available.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ SECTOR OFFLINE ╌╌\n\nNo neural uplink is configured.\nSet an LLM provider API key and restart the terminal.")
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
