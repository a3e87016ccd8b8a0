// Package welcome shows the boot splash while the identity gate
// resolves the operator's session in the background.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/ui/theme"
)

const tickInterval = 120 * time.Millisecond

// pulseFrames animate the uplink indicator while the session resolves.
var pulseFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

type tickMsg time.Time

// WelcomeScreen shows the boot banner and waits for the identity gate
// before transitioning to the gateway screen.
type WelcomeScreen struct {
	reader         identity.SessionReader
	gatewayFactory func() screen.Screen
	tickCount      int
	transitioned   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by gatewayFactory once the operator presses a key.
func New(reader identity.SessionReader, gatewayFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		reader:         reader,
		gatewayFactory: gatewayFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Hold on the splash until the session check settles.
		if w.reader.Loading() {
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	gateway := w.gatewayFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: gateway}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Neural Science Terminal")
	sections = append(sections, tagline)
	sections = append(sections, "")

	if w.reader.Loading() {
		frame := pulseFrames[w.tickCount%len(pulseFrames)]
		status := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("%s Establishing neural link...", frame))
		sections = append(sections, status)
	} else {
		user := w.reader.CurrentUser()
		greeting := "Offline mode. Operating as guest researcher."
		if user != nil {
			greeting = fmt.Sprintf("Link established. Welcome back, %s.", user.FirstName())
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(greeting))
		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
