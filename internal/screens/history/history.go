// Package history implements the mission log screen listing past
// quiz rounds from the event store.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/session"
	"github.com/priyam/synapseed/internal/store"
	"github.com/priyam/synapseed/internal/ui/layout"
	"github.com/priyam/synapseed/internal/ui/theme"
)

type roundsLoadedMsg struct {
	Rounds []store.RoundRecord
	Err    error
}

type answersLoadedMsg struct {
	RoundID string
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen displays past rounds and, expanded, their answers.
type HistoryScreen struct {
	repo     store.EventRepo
	rounds   []store.RoundRecord
	answers  map[string][]store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		answers:  make(map[string][]store.AnswerRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		rounds, err := repo.QueryRounds(context.Background(), store.QueryOpts{Limit: 50})
		return roundsLoadedMsg{Rounds: rounds, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Mission Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.RoundID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s.toggleExpand()
		}
	}
	return s, nil
}

// toggleExpand flips the detail view for the selected round, fetching
// its answers on first open.
func (s *HistoryScreen) toggleExpand() (screen.Screen, tea.Cmd) {
	if s.selected >= len(s.rounds) {
		return s, nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	roundID := s.rounds[s.selected].RoundID
	if _, ok := s.answers[roundID]; ok || !s.expanded[s.selected] {
		return s, nil
	}

	repo := s.repo
	return s, func() tea.Msg {
		answers, err := repo.QueryAnswers(context.Background(), roundID)
		return answersLoadedMsg{RoundID: roundID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading mission log...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No missions recorded. Engage a sector!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, round := range s.rounds {
		dateStr := round.Timestamp.Format("Jan 02, 2006")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s / %s  %d/%d  %d%%  %s",
			prefix, dateStr, round.Subject, round.Topic,
			round.CorrectCount, round.QuestionCount, round.Score, round.Rank)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderAnswers(&b, width, round.RoundID)
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(b *strings.Builder, width int, roundID string) {
	answers, ok := s.answers[roundID]
	if !ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Loading answers...")))
		b.WriteString("\n")
		return
	}
	if len(answers) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No answer records for this round")))
		b.WriteString("\n")
		return
	}

	for _, a := range answers {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if a.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else if a.SelectedOption == session.Unanswered {
			mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
		}

		text := a.QuestionText
		if maxLen := width - 16; maxLen > 8 && len(text) > maxLen {
			text = text[:maxLen-3] + "..."
		}

		line := fmt.Sprintf("    %s Q%d  %s", mark, a.QuestionIndex+1, text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
}
