package quizgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/llm"
)

// systemPersona fixes the assistant's identity and domain for every
// generation request.
const systemPersona = `You are M.O.A.N.A. (Molecular Organism & Advanced Neural Analyzer). ` +
	`You are a master of Physics, Chemistry, Botany, and Zoology curriculum spanning HS, BSc, and MSc levels. ` +
	`You output ONLY valid JSON. You vary your questions infinitely.`

// LLMGenerator produces rounds by prompting an LLM provider for
// structured quiz JSON.
type LLMGenerator struct {
	provider llm.Provider
	opts     Options

	// intN is swappable for deterministic tests.
	intN func(n int) int
}

// Options configures an LLMGenerator.
type Options struct {
	// Fallback controls behavior when generation fails. The default,
	// FallbackRevert, returns the error to the caller.
	Fallback FallbackPolicy

	// Timeout bounds each provider call. Zero means no deadline beyond
	// what the caller's context carries.
	Timeout time.Duration

	// MaxTokens caps the completion size. Zero selects a default large
	// enough for a ten-question round.
	MaxTokens int
}

const defaultMaxTokens = 4096

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, opts Options) *LLMGenerator {
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	return &LLMGenerator{
		provider: provider,
		opts:     opts,
		intN:     rand.IntN,
	}
}

// Generate requests a quiz round for the given subject and topic.
// Its errors are always one of ProviderError, MalformedResponseError,
// or EmptyResultError; under FallbackSynthetic it never errors and
// instead degrades to a single-question round.
func (g *LLMGenerator) Generate(ctx context.Context, in Input) (*Round, error) {
	count := in.Count
	if count <= 0 {
		count = DefaultCount
	}

	depth := catalog.DepthLevels[g.intN(len(catalog.DepthLevels))]
	focuses := in.Subject.FocusAreas()
	focus := focuses[g.intN(len(focuses))]
	seed := g.intN(1_000_000)

	round := &Round{
		Subject:     in.Subject,
		Topic:       in.Topic,
		Depth:       depth,
		Focus:       focus,
		Seed:        seed,
		GeneratedAt: time.Now(),
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPersona,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(in.Subject, in.Topic, depth, focus, seed, count)},
		},
		Schema:      &llm.Schema{Name: "quiz-round"},
		MaxTokens:   g.opts.MaxTokens,
		Temperature: 0.9,
	})
	if err != nil {
		return g.fail(round, &ProviderError{Err: err})
	}

	entries, err := extractEntries(resp.Content)
	if err != nil {
		return g.fail(round, err)
	}

	questions := parseQuestions(entries)
	if len(questions) == 0 {
		return g.fail(round, &EmptyResultError{})
	}

	round.Questions = questions
	return round, nil
}

// fail applies the configured fallback policy to a failed generation.
func (g *LLMGenerator) fail(round *Round, err error) (*Round, error) {
	if g.opts.Fallback == FallbackSynthetic {
		round.Questions = []Question{SyntheticQuestion()}
		return round, nil
	}
	return nil, err
}

// buildPrompt embeds the subject, topic, difficulty, focus tag, and
// anti-repetition seed into the user message.
func buildPrompt(subject catalog.Subject, topic, depth, focus string, seed, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "COMMAND: Generate %d High-Fidelity Quiz Questions.\n", count)
	fmt.Fprintf(&b, "SUBJECT: %s | MODULE: %s | DEPTH: %s\n\n", subject.Label(), topic, depth)
	b.WriteString("VARIABILITY PROTOCOL:\n")
	fmt.Fprintf(&b, "1. PRIMARY FOCUS AREA: %s\n", focus)
	b.WriteString("2. NO REPETITION: Use deep curriculum details. Do not repeat standard introductory questions.\n")
	b.WriteString("3. DISTRACTOR ROTATION: Create NEW plausible wrong options for every round.\n")
	b.WriteString("4. LINGUISTIC VARIANCE: Vary sentence structure.\n")
	fmt.Fprintf(&b, "5. RANDOM SEED: %d\n\n", seed)
	fmt.Fprintf(&b, "Return exactly %d questions in a JSON object with a \"questions\" array.\n", count)
	b.WriteString(`Required keys per question: "question" (string), "options" (array of 4 strings), "correct" (integer 0-3), "explanation" (detailed scientific reason).`)
	return b.String()
}
