package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/llm"
)

func validQuestionsJSON(n int) json.RawMessage {
	var entries []string
	for i := range n {
		entries = append(entries, fmt.Sprintf(
			`{"question":"Q%d?","options":["a","b","c","d"],"correct":%d,"explanation":"because"}`,
			i, i%4))
	}
	return json.RawMessage(`{"questions":[` + strings.Join(entries, ",") + `]}`)
}

func newTestGenerator(opts Options, responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := NewLLMGenerator(mock, opts)
	gen.intN = func(n int) int { return 0 }
	return gen, mock
}

func TestGenerate_HappyPath(t *testing.T) {
	gen, mock := newTestGenerator(Options{}, llm.MockResponse{Content: validQuestionsJSON(10)})

	round, err := gen.Generate(context.Background(), Input{
		Subject: catalog.SubjectBotany,
		Topic:   "Cell Biology",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(round.Questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(round.Questions))
	}
	if round.Topic != "Cell Biology" {
		t.Fatalf("unexpected topic: %q", round.Topic)
	}
	if round.GeneratedAt.IsZero() {
		t.Fatal("expected GeneratedAt to be set")
	}

	// The prompt should embed topic, depth, focus, and seed.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Cell Biology", round.Depth, round.Focus, fmt.Sprintf("SEED: %d", round.Seed)} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Definition != nil {
		t.Fatal("expected a JSON-mode schema without a definition")
	}
}

func TestGenerate_ToleratesQuizKey(t *testing.T) {
	// A "quiz" key with nine valid entries is a nine-question round, not
	// an error.
	var entries []string
	for i := range 9 {
		entries = append(entries, fmt.Sprintf(
			`{"question":"Q%d?","options":["a","b","c","d"],"correct":0}`, i))
	}
	payload := json.RawMessage(`{"quiz":[` + strings.Join(entries, ",") + `]}`)

	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: payload})
	round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectPhysics, Topic: "Optics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(round.Questions) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(round.Questions))
	}
}

func TestGenerate_ToleratesBareArray(t *testing.T) {
	payload := json.RawMessage(`[{"question":"Q?","options":["a","b","c","d"],"correct":3}]`)

	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: payload})
	round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectChemistry, Topic: "Acids"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(round.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(round.Questions))
	}
	if round.Questions[0].Correct != 3 {
		t.Fatalf("expected correct=3, got %d", round.Questions[0].Correct)
	}
}

func TestGenerate_EmptyObjectIsEmptyResult(t *testing.T) {
	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: json.RawMessage(`{}`)})

	_, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectZoology, Topic: "Genetics"})
	var empty *EmptyResultError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyResultError, got: %T (%v)", err, err)
	}
}

func TestGenerate_MalformedPayload(t *testing.T) {
	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: json.RawMessage(`"just a string"`)})

	_, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Algae"})
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got: %T (%v)", err, err)
	}
}

func TestGenerate_ProviderFailureWraps(t *testing.T) {
	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Err: &llm.ErrRateLimit{}})

	_, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Algae"})
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got: %T (%v)", err, err)
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatal("expected wrapped ErrRateLimit to remain reachable")
	}
}

func TestGenerate_DropsInvalidEntries(t *testing.T) {
	// Three entries: valid, correct index out of range, wrong option count.
	payload := json.RawMessage(`{"questions":[
		{"question":"Q1?","options":["a","b","c","d"],"correct":1},
		{"question":"Q2?","options":["a","b","c","d"],"correct":7},
		{"question":"Q3?","options":["a","b"],"correct":0}
	]}`)

	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: payload})
	round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Fungi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(round.Questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(round.Questions))
	}
	if round.Questions[0].Prompt != "Q1?" {
		t.Fatalf("wrong survivor: %q", round.Questions[0].Prompt)
	}
}

func TestGenerate_NumericOptionsStringified(t *testing.T) {
	payload := json.RawMessage(`{"questions":[
		{"question":"How many carpels?","options":[1,2,3,4],"correct":2}
	]}`)

	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: payload})
	round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Flowers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := round.Questions[0].Options[2]; got != "3" {
		t.Fatalf("expected option %q, got %q", "3", got)
	}
}

func TestGenerate_ExplanationPlaceholder(t *testing.T) {
	payload := json.RawMessage(`{"questions":[
		{"question":"Q?","options":["a","b","c","d"],"correct":0}
	]}`)

	gen, _ := newTestGenerator(Options{}, llm.MockResponse{Content: payload})
	round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Roots"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round.Questions[0].Explanation == "" {
		t.Fatal("expected placeholder explanation")
	}
}

func TestGenerate_SyntheticFallback(t *testing.T) {
	cases := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"empty result", llm.MockResponse{Content: json.RawMessage(`{}`)}},
		{"malformed", llm.MockResponse{Content: json.RawMessage(`42`)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen, _ := newTestGenerator(Options{Fallback: FallbackSynthetic}, tc.resp)
			round, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Mosses"})
			if err != nil {
				t.Fatalf("synthetic policy must not error, got: %v", err)
			}
			if len(round.Questions) != 1 {
				t.Fatalf("expected single synthetic question, got %d", len(round.Questions))
			}
			q := round.Questions[0]
			if !strings.Contains(q.Prompt, "Neural Link Error") {
				t.Fatalf("unexpected synthetic prompt: %q", q.Prompt)
			}
			if q.Correct != 0 || len(q.Options) != 4 {
				t.Fatal("synthetic question shape is wrong")
			}
		})
	}
}

func TestGenerate_DefaultCountInPrompt(t *testing.T) {
	gen, mock := newTestGenerator(Options{}, llm.MockResponse{Content: validQuestionsJSON(10)})
	_, err := gen.Generate(context.Background(), Input{Subject: catalog.SubjectBotany, Topic: "Seeds"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Generate 10 High-Fidelity") {
		t.Fatal("expected default count of 10 in prompt")
	}
}
