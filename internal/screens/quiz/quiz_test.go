package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/quizgen"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/session"
	"github.com/priyam/synapseed/internal/store"
)

// mockGenerator implements quizgen.Generator for testing.
type mockGenerator struct {
	round *quizgen.Round
	err   error
}

func (m *mockGenerator) Generate(_ context.Context, in quizgen.Input) (*quizgen.Round, error) {
	if m.err != nil {
		return nil, m.err
	}
	round := *m.round
	round.Subject = in.Subject
	round.Topic = in.Topic
	return &round, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	rounds  []store.RoundEventData
	answers []store.AnswerEventData
}

func (m *mockEventRepo) AppendRound(_ context.Context, data store.RoundEventData) error {
	m.rounds = append(m.rounds, data)
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) QueryRounds(_ context.Context, _ store.QueryOpts) ([]store.RoundRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RoundStats(_ context.Context) (store.RoundStats, error) {
	return store.RoundStats{}, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRound(n int) *quizgen.Round {
	round := &quizgen.Round{
		Subject: catalog.SubjectBotany,
		Topic:   "Genetics",
	}
	for i := range n {
		round.Questions = append(round.Questions, quizgen.Question{
			Prompt:      "Q?",
			Options:     []string{"a", "b", "c", "d"},
			Correct:     i % 4,
			Explanation: "because",
		})
	}
	return round
}

func testQuizScreen(n int) (*QuizScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	gen := &mockGenerator{round: testRound(n)}
	return New(catalog.SubjectBotany, gen, repo), repo
}

// drain executes a command tree and feeds every produced message back
// into the screen, mimicking the Bubble Tea runtime.
func drain(t *testing.T, s screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		return s
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			s = drain(t, s, sub)
		}
		return s
	}
	// Ticks re-arm themselves forever; stop after delivery.
	if _, isTick := msg.(spinnerTickMsg); isTick {
		return s
	}
	next, nextCmd := s.Update(msg)
	return drain(t, next, nextCmd)
}

// startQuiz drives the screen from topic selection into the question
// phase through the public Update path.
func startQuiz(t *testing.T, q *QuizScreen) *QuizScreen {
	t.Helper()
	var scr screen.Screen = q
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr = drain(t, scr, cmd)
	qs := scr.(*QuizScreen)
	if qs.state.Phase() != session.PhaseQuestion {
		t.Fatalf("expected Question phase, got %v", qs.state.Phase())
	}
	return qs
}

func TestQuizScreen_TitleAndSector(t *testing.T) {
	q, _ := testQuizScreen(3)
	if q.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", q.Title(), "Assessment")
	}
	if q.Sector() != "Botany" {
		t.Errorf("Sector = %q, want %q", q.Sector(), "Botany")
	}
}

func TestQuizScreen_TopicSelectIntoQuestion(t *testing.T) {
	q, _ := testQuizScreen(3)
	q = startQuiz(t, q)

	if got := q.state.Topic(); got != q.topics[0].Name {
		t.Errorf("topic = %q, want %q", got, q.topics[0].Name)
	}
	if q.opts.Question != "Q?" {
		t.Errorf("option list not synced: %q", q.opts.Question)
	}
}

func TestQuizScreen_GenerationFailureShowsError(t *testing.T) {
	repo := &mockEventRepo{}
	gen := &mockGenerator{err: errors.New("uplink down")}
	q := New(catalog.SubjectBotany, gen, repo)

	var scr screen.Screen = q
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr = drain(t, scr, cmd)
	qs := scr.(*QuizScreen)

	if qs.state.Phase() != session.PhaseTopicSelect {
		t.Fatalf("expected revert to TopicSelect, got %v", qs.state.Phase())
	}
	if qs.state.LastError() == nil {
		t.Error("expected generation error to be recorded")
	}
}

func TestQuizScreen_StaleRoundDropped(t *testing.T) {
	q, _ := testQuizScreen(3)

	token, ok := q.state.SelectTopic(catalog.SubjectBotany, "Genetics")
	if !ok {
		t.Fatal("SelectTopic rejected")
	}

	// Abort while loading; the in-flight result must be discarded.
	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, _ = scr.Update(roundReadyMsg{Token: token, Round: testRound(3)})
	qs := scr.(*QuizScreen)

	if qs.state.Phase() != session.PhaseTopicSelect {
		t.Errorf("stale round applied: phase %v", qs.state.Phase())
	}
}

func TestQuizScreen_AnswerAndNavigate(t *testing.T) {
	q, _ := testQuizScreen(3)
	q = startQuiz(t, q)

	// Select the option under the cursor (index 0, correct for Q1).
	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)
	if got := qs.state.AnswerFor(0); got != 0 {
		t.Fatalf("answer not recorded: %d", got)
	}

	// Move to next question and back; selection survives.
	scr, _ = qs.Update(specialKey(tea.KeyRight))
	qs = scr.(*QuizScreen)
	if qs.state.Index() != 1 {
		t.Fatalf("expected index 1, got %d", qs.state.Index())
	}
	scr, _ = qs.Update(specialKey(tea.KeyLeft))
	qs = scr.(*QuizScreen)
	if qs.opts.Chosen != 0 {
		t.Errorf("selection lost on revisit: %d", qs.opts.Chosen)
	}
}

func TestQuizScreen_FinishPersistsRoundAndAnswers(t *testing.T) {
	q, repo := testQuizScreen(2)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer Q1 correctly
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, cmd := scr.Update(keyPress('f'))
	scr = drain(t, scr, cmd)
	qs := scr.(*QuizScreen)

	if qs.state.Phase() != session.PhaseResults {
		t.Fatalf("expected Results, got %v", qs.state.Phase())
	}

	if len(repo.rounds) != 1 {
		t.Fatalf("round events = %d, want 1", len(repo.rounds))
	}
	round := repo.rounds[0]
	if round.Score != 50 || round.CorrectCount != 1 || round.QuestionCount != 2 {
		t.Errorf("round event = %+v", round)
	}
	if round.Rank != session.Rank(50) {
		t.Errorf("rank = %q", round.Rank)
	}

	if len(repo.answers) != 2 {
		t.Fatalf("answer events = %d, want 2", len(repo.answers))
	}
	if repo.answers[1].SelectedOption != session.Unanswered || repo.answers[1].Correct {
		t.Errorf("unanswered question recorded as %+v", repo.answers[1])
	}
}

func TestQuizScreen_PersistSurvivesExitBeforeCommandRuns(t *testing.T) {
	q, repo := testQuizScreen(3)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // answer Q1 correctly
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, cmd := scr.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected a persist command from finish")
	}

	// Leave the results screen before the command fires. The round is
	// gone from the session by the time the append runs.
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if qs.state.Phase() != session.PhaseTopicSelect {
		t.Fatalf("expected TopicSelect after exit, got %v", qs.state.Phase())
	}

	msg := cmd()
	if _, ok := msg.(persistDoneMsg); !ok {
		t.Fatalf("expected persistDoneMsg, got %T", msg)
	}

	if len(repo.rounds) != 1 {
		t.Fatalf("round events = %d, want 1", len(repo.rounds))
	}
	round := repo.rounds[0]
	if round.QuestionCount != 3 || round.CorrectCount != 1 {
		t.Errorf("round event = %+v", round)
	}
	if len(repo.answers) != 3 {
		t.Fatalf("answer events = %d, want 3", len(repo.answers))
	}
	if repo.answers[0].SelectedOption != 0 || !repo.answers[0].Correct {
		t.Errorf("answered question recorded as %+v", repo.answers[0])
	}
}

func TestQuizScreen_FinishOnlyFromLastQuestion(t *testing.T) {
	q, repo := testQuizScreen(3)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(keyPress('f'))
	qs := scr.(*QuizScreen)

	if qs.state.Phase() != session.PhaseQuestion {
		t.Errorf("finish accepted away from last question: %v", qs.state.Phase())
	}
	if len(repo.rounds) != 0 {
		t.Errorf("round persisted early")
	}
}

func TestQuizScreen_ReviewAndBack(t *testing.T) {
	q, _ := testQuizScreen(2)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, cmd := scr.Update(keyPress('f'))
	scr = drain(t, scr, cmd)

	scr, _ = scr.Update(keyPress('v'))
	qs := scr.(*QuizScreen)
	if qs.state.Phase() != session.PhaseRecap {
		t.Fatalf("expected Recap, got %v", qs.state.Phase())
	}
	if !qs.opts.Recap {
		t.Error("option list not in recap mode")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuizScreen)
	if qs.state.Phase() != session.PhaseResults {
		t.Errorf("expected Results after recap exit, got %v", qs.state.Phase())
	}
}

func TestQuizScreen_RestartGeneratesNewRound(t *testing.T) {
	q, repo := testQuizScreen(2)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, cmd := scr.Update(keyPress('f'))
	scr = drain(t, scr, cmd)

	scr, cmd = scr.Update(keyPress('r'))
	scr = drain(t, scr, cmd)
	qs := scr.(*QuizScreen)

	if qs.state.Phase() != session.PhaseQuestion {
		t.Fatalf("expected new Question phase, got %v", qs.state.Phase())
	}
	if got := qs.state.AnswerFor(0); got != session.Unanswered {
		t.Errorf("answers not reset: %d", got)
	}
	// One more finish should persist a second round.
	scr, _ = qs.Update(specialKey(tea.KeyRight))
	scr, cmd = scr.Update(keyPress('f'))
	drain(t, scr, cmd)
	if len(repo.rounds) != 2 {
		t.Errorf("round events = %d, want 2", len(repo.rounds))
	}
}

func TestQuizScreen_AbandonConfirm(t *testing.T) {
	q, _ := testQuizScreen(2)
	q = startQuiz(t, q)

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.confirmAbandon {
		t.Fatal("expected abandon confirmation")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.confirmAbandon || qs.state.Phase() != session.PhaseQuestion {
		t.Fatal("expected to stay in question phase")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	scr, _ = scr.Update(keyPress('y'))
	qs = scr.(*QuizScreen)
	if qs.state.Phase() != session.PhaseTopicSelect {
		t.Errorf("expected TopicSelect after abandon, got %v", qs.state.Phase())
	}
}

func TestQuizScreen_View_AllPhases(t *testing.T) {
	q, _ := testQuizScreen(2)
	if q.View(80, 24) == "" {
		t.Error("empty topic select view")
	}

	q = startQuiz(t, q)
	if q.View(80, 24) == "" {
		t.Error("empty question view")
	}

	var scr screen.Screen = q
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, cmd := scr.Update(keyPress('f'))
	scr = drain(t, scr, cmd)
	qs := scr.(*QuizScreen)
	if qs.View(80, 24) == "" {
		t.Error("empty results view")
	}

	scr, _ = qs.Update(keyPress('v'))
	qs = scr.(*QuizScreen)
	if qs.View(80, 24) == "" {
		t.Error("empty recap view")
	}
}
