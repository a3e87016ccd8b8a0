// Package gateway implements the main menu: subject selection into the
// quiz flow, the AI hub, and the mission log.
package gateway

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/quizgen"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	chatscreen "github.com/priyam/synapseed/internal/screens/chat"
	"github.com/priyam/synapseed/internal/screens/history"
	"github.com/priyam/synapseed/internal/screens/placeholder"
	quizscreen "github.com/priyam/synapseed/internal/screens/quiz"
	"github.com/priyam/synapseed/internal/store"
	"github.com/priyam/synapseed/internal/ui/components"
	"github.com/priyam/synapseed/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats store.RoundStats
	Err   error
}

// GatewayScreen is the main menu of the application.
type GatewayScreen struct {
	menu     components.Menu
	reader   identity.SessionReader
	repo     store.EventRepo
	stats    store.RoundStats
	hasStats bool
}

var _ screen.Screen = (*GatewayScreen)(nil)

// New creates a GatewayScreen with injected dependencies. A nil
// generator or repo routes the affected entries to a placeholder
// instead of crashing the program.
func New(reader identity.SessionReader, generator quizgen.Generator, chatService *chat.Service, repo store.EventRepo) *GatewayScreen {
	var items []components.MenuItem

	for _, subject := range catalog.Subjects() {
		subject := subject
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(subject.Label()) + " SECTOR",
			Action: func() tea.Cmd {
				if generator == nil {
					return func() tea.Msg {
						return router.PushScreenMsg{Screen: placeholder.New(subject.Label())}
					}
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(subject, generator, repo),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "A.I. HUB", Action: func() tea.Cmd {
			if chatService == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("A.I. Hub")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(chatService)}
			}
		}},
		components.MenuItem{Label: "MISSION LOG", Action: func() tea.Cmd {
			if repo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Mission Log")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}},
		components.MenuItem{Label: "EXIT TERMINAL", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &GatewayScreen{
		menu:   components.NewMenu(items),
		reader: reader,
		repo:   repo,
	}
}

func (g *GatewayScreen) Init() tea.Cmd {
	if g.repo == nil {
		return nil
	}
	repo := g.repo
	return func() tea.Msg {
		stats, err := repo.RoundStats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (g *GatewayScreen) Title() string {
	return "Gateway"
}

func (g *GatewayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			g.stats = msg.Stats
			g.hasStats = true
		}
		return g, nil
	}

	var cmd tea.Cmd
	g.menu, cmd = g.menu.Update(msg)
	return g, cmd
}

func (g *GatewayScreen) View(width, height int) string {
	var sections []string

	operator := "Researcher"
	if user := g.reader.CurrentUser(); user != nil {
		operator = user.FirstName()
	}
	greeting := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Operator: %s", operator))
	sections = append(sections, greeting)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Select a sector to begin a knowledge assessment.")
	sections = append(sections, sub)
	sections = append(sections, "")

	sections = append(sections, g.menu.View())

	if g.hasStats && g.stats.TotalRounds > 0 {
		sections = append(sections, "")
		statsLine := fmt.Sprintf("Rounds: %d   Avg: %.0f%%   Best: %d%%",
			g.stats.TotalRounds, g.stats.AverageScore, g.stats.BestScore)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(statsLine))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
