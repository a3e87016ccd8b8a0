// Package quiz drives the round lifecycle on screen: topic selection,
// generation, question navigation, recap, and the results modal.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/quizgen"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/session"
	"github.com/priyam/synapseed/internal/store"
	"github.com/priyam/synapseed/internal/ui/components"
	"github.com/priyam/synapseed/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// QuizScreen implements screen.Screen for one subject's quiz flow. The
// session state machine owns all phase transitions; the screen only
// translates key presses and async results into state calls.
type QuizScreen struct {
	subject   catalog.Subject
	generator quizgen.Generator
	repo      store.EventRepo

	state  *session.State
	topics []catalog.Topic
	cursor int

	opts components.OptionList
	tick int

	confirmAbandon bool
	persisted      bool
	persistErr     error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.SectorProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given subject. A nil repo disables
// persistence but not play.
func New(subject catalog.Subject, generator quizgen.Generator, repo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		subject:   subject,
		generator: generator,
		repo:      repo,
		state:     session.New(),
		topics:    subject.Topics(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Assessment"
}

func (q *QuizScreen) Sector() string {
	return q.subject.Label()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.state.Phase() {
	case session.PhaseTopicSelect:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Engage"},
			{Key: "Esc", Description: "Back"},
		}
	case session.PhaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Abort"},
		}
	case session.PhaseQuestion:
		if q.confirmAbandon {
			return []layout.KeyHint{
				{Key: "Y", Description: "Abandon"},
				{Key: "N", Description: "Keep going"},
			}
		}
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select"},
			{Key: "←→", Description: "Question"},
		}
		if q.state.Index() == q.state.QuestionCount()-1 {
			hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	case session.PhaseRecap:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Results"},
		}
	case session.PhaseResults:
		return []layout.KeyHint{
			{Key: "V", Description: "Review"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Sectors"},
		}
	}
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundReadyMsg:
		if q.state.ApplyRound(msg.Token, msg.Round) && q.state.Phase() == session.PhaseQuestion {
			q.syncOptions()
		}
		return q, nil

	case roundFailedMsg:
		q.state.ApplyError(msg.Token, msg.Err)
		return q, nil

	case spinnerTickMsg:
		if q.state.Phase() != session.PhaseLoading {
			return q, nil
		}
		q.tick++
		return q, spinnerTick()

	case persistDoneMsg:
		q.persistErr = msg.Err
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.state.Phase() {
	case session.PhaseTopicSelect:
		switch key {
		case "up", "k":
			if q.cursor > 0 {
				q.cursor--
			}
		case "down", "j":
			if q.cursor < len(q.topics)-1 {
				q.cursor++
			}
		case "enter":
			return q.startRound(q.topics[q.cursor].Name)
		case "esc":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil

	case session.PhaseLoading:
		if key == "esc" {
			// Any in-flight result goes stale with the token.
			q.state.Exit()
		}
		return q, nil

	case session.PhaseQuestion:
		return q.handleQuestionKey(key, msg)

	case session.PhaseRecap:
		switch key {
		case "left", "h":
			if q.state.Prev() {
				q.syncOptions()
			}
		case "right", "l":
			if q.state.Next() {
				q.syncOptions()
			}
		case "esc":
			q.state.EndReview()
		}
		return q, nil

	case session.PhaseResults:
		switch key {
		case "v", "V":
			if q.state.Review() {
				q.syncOptions()
			}
			return q, nil
		case "r", "R":
			return q.restartRound()
		case "esc", "enter":
			q.state.Exit()
			q.persisted = false
			q.persistErr = nil
			return q, nil
		}
		return q, nil
	}

	return q, nil
}

func (q *QuizScreen) handleQuestionKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.confirmAbandon {
		switch key {
		case "y", "Y":
			q.confirmAbandon = false
			q.state.Exit()
		case "n", "N", "esc":
			q.confirmAbandon = false
		}
		return q, nil
	}

	switch key {
	case "left", "h":
		if q.state.Prev() {
			q.syncOptions()
		}
		return q, nil
	case "right", "l":
		if q.state.Next() {
			q.syncOptions()
		}
		return q, nil
	case "f", "F":
		if q.state.Finish() {
			return q, q.persistRound()
		}
		return q, nil
	case "esc":
		q.confirmAbandon = true
		return q, nil
	}

	// Cursor movement and option selection.
	var cmd tea.Cmd
	q.opts, cmd = q.opts.Update(msg)
	if q.opts.Chosen != session.Unanswered && q.opts.Chosen != q.state.AnswerFor(q.state.Index()) {
		q.state.Answer(q.opts.Chosen)
	}
	return q, cmd
}

// startRound asks the state machine for a generation token and kicks
// off the provider call.
func (q *QuizScreen) startRound(topic string) (screen.Screen, tea.Cmd) {
	token, ok := q.state.SelectTopic(q.subject, topic)
	if !ok {
		return q, nil
	}
	q.persisted = false
	q.persistErr = nil
	return q, tea.Batch(q.generateRound(token), spinnerTick())
}

func (q *QuizScreen) restartRound() (screen.Screen, tea.Cmd) {
	token, ok := q.state.Restart()
	if !ok {
		return q, nil
	}
	q.persisted = false
	q.persistErr = nil
	return q, tea.Batch(q.generateRound(token), spinnerTick())
}

// generateRound runs generation off the event loop and reports back
// with the request token attached.
func (q *QuizScreen) generateRound(token string) tea.Cmd {
	gen := q.generator
	subject := q.state.Subject()
	topic := q.state.Topic()
	return func() tea.Msg {
		round, err := gen.Generate(context.Background(), quizgen.Input{
			Subject: subject,
			Topic:   topic,
		})
		if err != nil {
			return roundFailedMsg{Token: token, Err: err}
		}
		return roundReadyMsg{Token: token, Round: round}
	}
}

// persistRound appends the round event and one answer event per
// question to the event log. Everything is snapshotted before the
// command closure is returned: the closure runs off the event loop,
// and the user may exit the results screen (nilling the round) before
// it fires.
func (q *QuizScreen) persistRound() tea.Cmd {
	if q.repo == nil || q.persisted {
		return nil
	}
	q.persisted = true

	round := q.state.Round()
	score := q.state.Score()
	roundData := store.RoundEventData{
		RoundID:       uuid.NewString(),
		Subject:       round.Subject.ID(),
		Topic:         round.Topic,
		Depth:         round.Depth,
		Focus:         round.Focus,
		Seed:          round.Seed,
		QuestionCount: len(round.Questions),
		CorrectCount:  q.state.CorrectCount(),
		Score:         score,
		Rank:          session.Rank(score),
	}

	answerData := make([]store.AnswerEventData, len(round.Questions))
	for i, question := range round.Questions {
		selected := q.state.AnswerFor(i)
		answerData[i] = store.AnswerEventData{
			RoundID:        roundData.RoundID,
			QuestionIndex:  i,
			QuestionText:   question.Prompt,
			CorrectOption:  question.Correct,
			SelectedOption: selected,
			Correct:        selected == question.Correct,
		}
	}

	repo := q.repo
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.AppendRound(ctx, roundData); err != nil {
			return persistDoneMsg{Err: err}
		}
		for _, data := range answerData {
			if err := repo.AppendAnswer(ctx, data); err != nil {
				return persistDoneMsg{Err: err}
			}
		}
		return persistDoneMsg{}
	}
}

// syncOptions rebuilds the option list for the question at the current
// index, restoring any prior selection.
func (q *QuizScreen) syncOptions() {
	question := q.state.Current()
	opts := components.NewOptionList(question.Prompt, question.Options, question.Correct)
	opts.Chosen = q.state.AnswerFor(q.state.Index())
	if opts.Chosen != session.Unanswered {
		opts.Cursor = opts.Chosen
	}
	opts.Recap = q.state.Phase() == session.PhaseRecap
	q.opts = opts
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
