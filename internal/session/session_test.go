package session

import (
	"errors"
	"testing"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/quizgen"
)

func testRound(n int) *quizgen.Round {
	round := &quizgen.Round{
		Subject: catalog.SubjectBotany,
		Topic:   "Cell Biology",
	}
	for i := range n {
		round.Questions = append(round.Questions, quizgen.Question{
			Prompt:  "Q?",
			Options: []string{"a", "b", "c", "d"},
			Correct: i % 4,
		})
	}
	return round
}

// startedSession returns a session in the Question phase with n questions.
func startedSession(t *testing.T, n int) *State {
	t.Helper()
	s := New()
	token, ok := s.SelectTopic(catalog.SubjectBotany, "Cell Biology")
	if !ok {
		t.Fatal("SelectTopic rejected")
	}
	if !s.ApplyRound(token, testRound(n)) {
		t.Fatal("ApplyRound rejected")
	}
	if s.Phase() != PhaseQuestion {
		t.Fatalf("expected Question phase, got %v", s.Phase())
	}
	return s
}

func finish(t *testing.T, s *State) {
	t.Helper()
	for s.Next() {
	}
	if !s.Finish() {
		t.Fatal("Finish rejected")
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	s := New()
	if s.Phase() != PhaseTopicSelect {
		t.Fatalf("expected TopicSelect, got %v", s.Phase())
	}

	token, ok := s.SelectTopic(catalog.SubjectBotany, "Cell Biology")
	if !ok || s.Phase() != PhaseLoading {
		t.Fatalf("expected Loading, got %v", s.Phase())
	}

	if !s.ApplyRound(token, testRound(10)) {
		t.Fatal("ApplyRound rejected matching token")
	}
	if s.Phase() != PhaseQuestion || s.Index() != 0 {
		t.Fatalf("expected Question(0), got %v(%d)", s.Phase(), s.Index())
	}
	for i := range 10 {
		if s.AnswerFor(i) != Unanswered {
			t.Fatalf("expected fresh answers, got %d at %d", s.AnswerFor(i), i)
		}
	}
}

func TestGenerationFailure_RevertsToTopicSelect(t *testing.T) {
	s := New()
	token, _ := s.SelectTopic(catalog.SubjectPhysics, "Optics")

	genErr := &quizgen.EmptyResultError{}
	if !s.ApplyError(token, genErr) {
		t.Fatal("ApplyError rejected matching token")
	}
	if s.Phase() != PhaseTopicSelect {
		t.Fatalf("expected TopicSelect, got %v", s.Phase())
	}
	if !errors.Is(s.LastError(), genErr) {
		t.Fatalf("expected surfaced error, got %v", s.LastError())
	}
}

func TestSelectTopic_IgnoredWhileLoading(t *testing.T) {
	s := New()
	s.SelectTopic(catalog.SubjectBotany, "Fungi")

	if _, ok := s.SelectTopic(catalog.SubjectBotany, "Algae"); ok {
		t.Fatal("expected duplicate selection to be ignored while loading")
	}
	if s.Topic() != "Fungi" {
		t.Fatalf("topic changed to %q", s.Topic())
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := New()
	stale, _ := s.SelectTopic(catalog.SubjectBotany, "Fungi")

	// The user bails out while the request is in flight.
	s.Exit()

	if s.ApplyRound(stale, testRound(10)) {
		t.Fatal("stale round applied after exit")
	}
	if s.Phase() != PhaseTopicSelect || s.Round() != nil {
		t.Fatal("session state mutated by stale response")
	}
}

func TestStaleResponseDiscarded_AfterReselect(t *testing.T) {
	s := New()
	stale, _ := s.SelectTopic(catalog.SubjectBotany, "Fungi")
	s.Exit()
	fresh, _ := s.SelectTopic(catalog.SubjectZoology, "Genetics")

	if s.ApplyRound(stale, testRound(3)) {
		t.Fatal("stale round applied to a new selection")
	}
	if s.ApplyError(stale, &quizgen.EmptyResultError{}) {
		t.Fatal("stale error applied to a new selection")
	}
	if !s.ApplyRound(fresh, testRound(5)) {
		t.Fatal("fresh round rejected")
	}
	if s.QuestionCount() != 5 {
		t.Fatalf("expected 5 questions, got %d", s.QuestionCount())
	}
}

func TestAnswer_OverwriteKeepsLatest(t *testing.T) {
	s := startedSession(t, 10)

	s.Answer(2)
	s.Next()
	s.Prev()
	s.Answer(1)

	if got := s.AnswerFor(0); got != 1 {
		t.Fatalf("expected latest answer 1, got %d", got)
	}
}

func TestAnswer_RejectedOutOfRange(t *testing.T) {
	s := startedSession(t, 1)
	if s.Answer(4) {
		t.Fatal("expected out-of-range option to be rejected")
	}
	if s.Answer(-1) {
		t.Fatal("expected negative option to be rejected")
	}
}

func TestNavigation_Bounds(t *testing.T) {
	s := startedSession(t, 3)

	if s.Prev() {
		t.Fatal("Prev at index 0 should fail")
	}
	if !s.Next() || !s.Next() {
		t.Fatal("Next within bounds should succeed")
	}
	if s.Next() {
		t.Fatal("Next at last index should fail")
	}
	if s.Index() != 2 {
		t.Fatalf("expected index 2, got %d", s.Index())
	}
}

func TestFinish_OnlyFromLastQuestion(t *testing.T) {
	s := startedSession(t, 3)
	if s.Finish() {
		t.Fatal("Finish from first question should fail")
	}
	finish(t, s)
	if s.Phase() != PhaseResults {
		t.Fatalf("expected Results, got %v", s.Phase())
	}
}

func TestRecap_AnswersImmutable(t *testing.T) {
	s := startedSession(t, 2)
	s.Answer(0)
	finish(t, s)

	if !s.Review() {
		t.Fatal("Review rejected")
	}
	if s.Phase() != PhaseRecap || s.Index() != 0 {
		t.Fatalf("expected Recap(0), got %v(%d)", s.Phase(), s.Index())
	}

	if s.Answer(3) {
		t.Fatal("Answer must be rejected in recap")
	}
	if got := s.AnswerFor(0); got != 0 {
		t.Fatalf("answer mutated in recap: %d", got)
	}

	// Navigation still works in recap.
	if !s.Next() || s.Index() != 1 {
		t.Fatal("recap navigation broken")
	}

	// EndReview goes back to results without touching answers.
	if !s.EndReview() || s.Phase() != PhaseResults {
		t.Fatalf("expected Results after EndReview, got %v", s.Phase())
	}
	if s.EndReview() {
		t.Fatal("EndReview must be rejected outside recap")
	}
}

func TestRestart_ResetsAnswersForNewLength(t *testing.T) {
	s := startedSession(t, 10)
	s.Answer(1)
	finish(t, s)

	token, ok := s.Restart()
	if !ok || s.Phase() != PhaseLoading {
		t.Fatalf("expected Loading after restart, got %v", s.Phase())
	}
	if s.Topic() != "Cell Biology" {
		t.Fatalf("restart changed topic: %q", s.Topic())
	}

	// The new round may have a different length.
	if !s.ApplyRound(token, testRound(7)) {
		t.Fatal("ApplyRound rejected restart token")
	}
	if s.QuestionCount() != 7 {
		t.Fatalf("expected 7 questions, got %d", s.QuestionCount())
	}
	for i := range 7 {
		if s.AnswerFor(i) != Unanswered {
			t.Fatalf("expected all unanswered after restart, got %d at %d", s.AnswerFor(i), i)
		}
	}
}

func TestScore_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		correct int
		want    int
	}{
		{"6 of 10", 10, 6, 60},
		{"7 of 10", 10, 7, 70},
		{"all correct", 10, 10, 100},
		{"none correct", 10, 0, 0},
		{"2 of 3 rounds up", 3, 2, 67},
		{"1 of 3 rounds down", 3, 1, 33},
		{"single question", 1, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession(t, tt.n)
			for i := 0; i < tt.correct; i++ {
				s.Answer(s.Current().Correct)
				s.Next()
			}
			finish(t, s)

			if got := s.CorrectCount(); got != tt.correct {
				t.Fatalf("CorrectCount = %d, want %d", got, tt.correct)
			}
			if got := s.Score(); got != tt.want {
				t.Fatalf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	for _, n := range []int{1, 3, 9, 10} {
		s := startedSession(t, n)
		finish(t, s)
		if score := s.Score(); score < 0 || score > 100 {
			t.Fatalf("n=%d: score %d out of bounds", n, score)
		}
	}
}

func TestScore_UnansweredCountAsWrong(t *testing.T) {
	s := startedSession(t, 10)

	// Answer 7 correctly, leave 3 untouched.
	for i := 0; i < 7; i++ {
		s.Answer(s.Current().Correct)
		s.Next()
	}
	finish(t, s)

	if got := s.CorrectCount(); got != 7 {
		t.Fatalf("CorrectCount = %d, want 7", got)
	}
	if got := s.Score(); got != 70 {
		t.Fatalf("Score = %d, want 70", got)
	}
}

func TestExit_DiscardsRound(t *testing.T) {
	s := startedSession(t, 5)
	s.Answer(1)
	s.Exit()

	if s.Phase() != PhaseTopicSelect || s.Round() != nil || s.QuestionCount() != 0 {
		t.Fatal("Exit did not discard session state")
	}
}

func TestApplyRound_EmptyRoundReverts(t *testing.T) {
	s := New()
	token, _ := s.SelectTopic(catalog.SubjectBotany, "Seeds")

	if !s.ApplyRound(token, &quizgen.Round{}) {
		t.Fatal("empty round should be consumed, not ignored")
	}
	if s.Phase() != PhaseTopicSelect {
		t.Fatalf("expected revert to TopicSelect, got %v", s.Phase())
	}
	var empty *quizgen.EmptyResultError
	if !errors.As(s.LastError(), &empty) {
		t.Fatalf("expected EmptyResultError, got %v", s.LastError())
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "NEURAL GENIUS"},
		{90, "ELITE SCHOLAR"},
		{80, "ELITE SCHOLAR"},
		{70, "ADVANCED BOTANIST"},
		{50, "ADVANCED BOTANIST"},
		{40, "INITIATE LEVEL"},
		{0, "INITIATE LEVEL"},
	}
	for _, tt := range tests {
		if got := Rank(tt.score); got != tt.want {
			t.Fatalf("Rank(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
