package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/llm"
)

const identityPreamble = `You are M.O.A.N.A. (Molecular Organism & Advanced Neural Analyzer). ` +
	`You are a master of Physics, Chemistry, Botany, and Zoology curriculum spanning HS, BSc, and MSc levels.`

// Service runs conversations against the LLM provider. The chat path
// requests free-form text, not structured JSON.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewService creates a chat service. A zero timeout leaves the deadline
// to the caller's context.
func NewService(provider llm.Provider, timeout time.Duration) *Service {
	return &Service{provider: provider, timeout: timeout}
}

// Intro is the greeting shown when a conversation opens.
func Intro(mode Mode, subject catalog.Subject) string {
	return fmt.Sprintf("Neural Link Established. M.O.A.N.A. %s protocol active for %s.",
		strings.ToUpper(mode.ID()), strings.ToUpper(subject.Label()))
}

// Send submits the user's input with the running history and returns
// the assistant's reply.
func (s *Service) Send(ctx context.Context, mode Mode, subject catalog.Subject, history []llm.Message, input string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "chat-"+mode.ID())

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: input})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      s.systemPrompt(mode, subject),
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	reply := decodeReply(resp.Content)
	if reply == "" {
		return "Neural Link Interrupted.", nil
	}
	return reply, nil
}

func (s *Service) systemPrompt(mode Mode, subject catalog.Subject) string {
	return fmt.Sprintf("%s %s Subject context: %s. Provide expert scientific guidance.",
		identityPreamble, modeInstructions[mode], subject.Label())
}

// decodeReply unwraps the provider content. Providers return raw JSON;
// for plain-text chat this is usually a JSON string, but some return
// the bare text.
func decodeReply(content json.RawMessage) string {
	var text string
	if err := json.Unmarshal(content, &text); err == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string(content))
}
