// Package app wires the screen stack into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/quizgen"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/screens/gateway"
	"github.com/priyam/synapseed/internal/screens/welcome"
	"github.com/priyam/synapseed/internal/store"
	"github.com/priyam/synapseed/internal/ui/layout"
)

// Options carries the dependencies the screens need. Any of them may
// be nil; the affected features degrade instead of failing.
type Options struct {
	Reader      identity.SessionReader
	Generator   quizgen.Generator
	ChatService *chat.Service
	EventRepo   store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	reader identity.SessionReader
	width  int
	height int
}

// newAppModel creates an AppModel opening on the welcome splash.
func newAppModel(opts Options) AppModel {
	reader := opts.Reader
	if reader == nil {
		reader = identity.StaticReader{}
	}

	welcomeScreen := welcome.New(reader, func() screen.Screen {
		return gateway.New(reader, opts.Generator, opts.ChatService, opts.EventRepo)
	})

	return AppModel{
		router: router.New(welcomeScreen),
		reader: reader,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	sector := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.SectorProvider); ok {
			sector = sp.Sector()
		}
	}

	operator := ""
	if user := m.reader.CurrentUser(); user != nil {
		operator = user.FirstName()
	}

	header := layout.RenderHeader(title, sector, operator, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
