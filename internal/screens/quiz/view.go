package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/session"
	"github.com/priyam/synapseed/internal/ui/components"
	"github.com/priyam/synapseed/internal/ui/theme"
)

// topicWindow is the number of topics visible at once in the selector.
const topicWindow = 12

var loadingFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

func (q *QuizScreen) View(width, height int) string {
	switch q.state.Phase() {
	case session.PhaseTopicSelect:
		return q.renderTopicSelect(width, height)
	case session.PhaseLoading:
		return q.renderLoading(width, height)
	case session.PhaseQuestion:
		if q.confirmAbandon {
			return renderAbandonConfirm(width, height)
		}
		return q.renderQuestion(width, height)
	case session.PhaseRecap:
		return q.renderRecap(width, height)
	case session.PhaseResults:
		return q.renderResults(width, height)
	}
	return ""
}

func (q *QuizScreen) renderTopicSelect(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s :: Select research topic", strings.ToUpper(q.subject.Label())))
	b.WriteString(title)
	b.WriteString("\n\n")

	if err := q.state.LastError(); err != nil {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Neural Link Error. The synthesis request failed."))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(err.Error()))
		b.WriteString("\n\n")
	}

	// Keep the cursor inside a sliding window so long catalogs fit.
	start := 0
	if q.cursor >= topicWindow {
		start = q.cursor - topicWindow + 1
	}
	end := min(start+topicWindow, len(q.topics))

	if start > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ▲ more"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		topic := q.topics[i]
		line := fmt.Sprintf("  %s  %s", topic.Icon, topic.Name)
		if i == q.cursor {
			line = fmt.Sprintf("▸ %s  %s", topic.Icon, topic.Name)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	if end < len(q.topics) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ▼ more"))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (q *QuizScreen) renderLoading(width, height int) string {
	frame := loadingFrames[q.tick%len(loadingFrames)]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s Synthesizing assessment", frame)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("M.O.A.N.A. is compiling %s questions...", q.state.Topic())))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	state := q.state
	var b strings.Builder

	answered := 0
	for i := 0; i < state.QuestionCount(); i++ {
		if state.AnswerFor(i) != session.Unanswered {
			answered++
		}
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Specimen %d/%d", state.Index()+1, state.QuestionCount()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered", answered))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.opts.View()))

	if state.Index() == state.QuestionCount()-1 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Press F to submit the round. Unanswered questions score as wrong."))
	}

	return b.String()
}

func (q *QuizScreen) renderRecap(width, height int) string {
	state := q.state
	question := state.Current()
	selected := state.AnswerFor(state.Index())

	var b strings.Builder

	verdict := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("MISS")
	if selected == question.Correct {
		verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("HIT")
	} else if selected == session.Unanswered {
		verdict = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("SKIPPED")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Recap %d/%d  ", state.Index()+1, state.QuestionCount())))
	b.WriteString(verdict)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.opts.View()))

	if question.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.Text).
			Render(question.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	return b.String()
}

func (q *QuizScreen) renderResults(width, height int) string {
	state := q.state
	score := state.Score()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("ASSESSMENT COMPLETE"))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	if score >= 50 {
		scoreStyle = scoreStyle.Foreground(theme.Success)
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d%%", score)))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(score)/100, false, min(width-16, 40))
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(session.Rank(score)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d correct on %s",
			state.CorrectCount(), state.QuestionCount(), state.Topic())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("[V] Review answers   [R] New round   [Esc] Topics"))

	if q.persistErr != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Mission log write failed; this round was not recorded."))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderAbandonConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this assessment?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Progress in this round will be lost."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
