package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/priyam/synapseed/internal/store"
)

// recordingEventRepo captures appended LLM events. The embedded
// interface panics on anything else, which no test here touches.
type recordingEventRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsProviderAndModel(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":1}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, "groq", repo)

	ctx := WithPurpose(context.Background(), "quiz")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "groq" {
		t.Errorf("provider = %q, want %q", ev.Provider, "groq")
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want %q", ev.Model, "mock")
	}
	if ev.Purpose != "quiz" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "quiz")
	}
	if !ev.Success || ev.InputTokens != 10 || ev.OutputTokens != 20 {
		t.Errorf("event = %+v", ev)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, "anthropic", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failed request logged as success")
	}
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected an error message on the event")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "unknown")
	}
}
