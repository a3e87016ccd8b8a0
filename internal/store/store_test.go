package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryRounds(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	rounds := []RoundEventData{
		{RoundID: "r1", Subject: "botany", Topic: "Cell Biology", QuestionCount: 10, CorrectCount: 6, Score: 60, Rank: "ADVANCED BOTANIST"},
		{RoundID: "r2", Subject: "physics", Topic: "Optics", QuestionCount: 9, CorrectCount: 9, Score: 100, Rank: "NEURAL GENIUS"},
	}
	for _, r := range rounds {
		if err := repo.AppendRound(ctx, r); err != nil {
			t.Fatalf("append round: %v", err)
		}
	}

	records, err := repo.QueryRounds(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query rounds: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(records))
	}
	// Newest first.
	if records[0].RoundID != "r2" {
		t.Fatalf("expected r2 first, got %s", records[0].RoundID)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Fatal("expected descending sequence order")
	}
}

func TestQueryRounds_Limit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, id := range []string{"r1", "r2", "r3"} {
		err := repo.AppendRound(ctx, RoundEventData{
			RoundID: id, Subject: "botany", Topic: "Fungi",
			QuestionCount: 1, Score: 0,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryRounds(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// Append out of question order; the query must sort by index.
	answers := []AnswerEventData{
		{RoundID: "r1", QuestionIndex: 1, QuestionText: "Q1?", CorrectOption: 2, SelectedOption: 2, Correct: true},
		{RoundID: "r1", QuestionIndex: 0, QuestionText: "Q0?", CorrectOption: 1, SelectedOption: -1, Correct: false},
		{RoundID: "r2", QuestionIndex: 0, QuestionText: "other round", CorrectOption: 0, SelectedOption: 0, Correct: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	records, err := repo.QueryAnswers(ctx, "r1")
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(records))
	}
	if records[0].QuestionIndex != 0 || records[1].QuestionIndex != 1 {
		t.Fatal("expected question-index order")
	}
	if records[0].SelectedOption != -1 {
		t.Fatalf("expected unanswered sentinel, got %d", records[0].SelectedOption)
	}
}

func TestRoundStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, r := range []RoundEventData{
		{RoundID: "r1", Subject: "botany", Topic: "t", QuestionCount: 10, Score: 60},
		{RoundID: "r2", Subject: "botany", Topic: "t", QuestionCount: 10, Score: 80},
		{RoundID: "r3", Subject: "zoology", Topic: "t", QuestionCount: 10, Score: 100},
	} {
		if err := repo.AppendRound(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.RoundStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRounds != 3 {
		t.Fatalf("TotalRounds = %d", stats.TotalRounds)
	}
	if stats.BestScore != 100 {
		t.Fatalf("BestScore = %d", stats.BestScore)
	}
	if stats.AverageScore != 80 {
		t.Fatalf("AverageScore = %v", stats.AverageScore)
	}
	if stats.RoundsBySubject["botany"] != 2 || stats.RoundsBySubject["zoology"] != 1 {
		t.Fatalf("RoundsBySubject = %v", stats.RoundsBySubject)
	}
}

func TestRoundStats_Empty(t *testing.T) {
	repo := testRepo(t)
	stats, err := repo.RoundStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRounds != 0 || stats.AverageScore != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestLLMEvents(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 500, LatencyMs: 900, Success: true, RequestBody: "[user]\nprompt"},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "quiz-gen", InputTokens: 120, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "chat-careers", InputTokens: 50, OutputTokens: 80, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM event: %v", err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 events, got %d", len(records))
	}

	got, err := repo.GetLLMEvent(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Purpose != "chat-careers" {
		t.Fatalf("expected newest event, got purpose %q", got.Purpose)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	for _, stat := range byPurpose {
		if stat.Key == "quiz-gen" {
			if stat.Requests != 2 || stat.Failures != 1 {
				t.Fatalf("quiz-gen stat = %+v", stat)
			}
			if stat.InputTokens != 220 || stat.OutputTokens != 500 {
				t.Fatalf("quiz-gen tokens = %+v", stat)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Requests != 3 {
		t.Fatalf("byModel = %+v", byModel)
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.AppendRound(ctx, RoundEventData{RoundID: "r1", Subject: "botany", Topic: "t", QuestionCount: 1}); err != nil {
		t.Fatalf("append round: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{RoundID: "r1", QuestionText: "q", SelectedOption: -1}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	rounds, _ := repo.QueryRounds(ctx, QueryOpts{})
	answers, _ := repo.QueryAnswers(ctx, "r1")
	if len(rounds) != 1 || len(answers) != 1 {
		t.Fatal("missing events")
	}
	if answers[0].Sequence <= rounds[0].Sequence {
		t.Fatalf("expected answer sequence (%d) after round sequence (%d)",
			answers[0].Sequence, rounds[0].Sequence)
	}
}
