package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/llm"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.ID())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.ID(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v, want %v", m.ID(), got, m)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("astrology")
	var unknown *UnknownModeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownModeError, got %T (%v)", err, err)
	}
	if unknown.ID != "astrology" {
		t.Fatalf("ID = %q", unknown.ID)
	}
}

func TestIntro(t *testing.T) {
	intro := Intro(ModeCareers, catalog.SubjectBotany)
	if !strings.Contains(intro, "CAREERS") || !strings.Contains(intro, "BOTANY") {
		t.Fatalf("unexpected intro: %q", intro)
	}
}

func TestSend_PassesHistoryAndPersona(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Consider CSIR institutes."`),
	})
	svc := NewService(mock, 0)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "hello"},
		{Role: llm.RoleAssistant, Content: "hi"},
	}
	reply, err := svc.Send(context.Background(), ModeCareers, catalog.SubjectBotany, history, "What next?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Consider CSIR institutes." {
		t.Fatalf("reply = %q", reply)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "M.O.A.N.A.") {
		t.Fatal("system prompt missing persona")
	}
	if !strings.Contains(req.System, "CAREERS") {
		t.Fatal("system prompt missing mode instruction")
	}
	if len(req.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(req.Messages))
	}
	if req.Messages[2].Content != "What next?" {
		t.Fatalf("last message = %q", req.Messages[2].Content)
	}
	if req.Schema != nil {
		t.Fatal("chat must not request structured output")
	}
}

func TestSend_BareTextReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Plain prose answer."),
	})
	svc := NewService(mock, 0)

	reply, err := svc.Send(context.Background(), ModeResearch, catalog.SubjectPhysics, nil, "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Plain prose answer." {
		t.Fatalf("reply = %q", reply)
	}
}

func TestSend_EmptyReplyFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`""`),
	})
	svc := NewService(mock, 0)

	reply, err := svc.Send(context.Background(), ModeResearch, catalog.SubjectPhysics, nil, "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Neural Link Interrupted." {
		t.Fatalf("reply = %q", reply)
	}
}

func TestSend_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, 0)

	_, err := svc.Send(context.Background(), ModeAbroad, catalog.SubjectChemistry, nil, "q")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}
