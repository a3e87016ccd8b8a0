package quizgen

import "context"

// Generator produces quiz rounds for a subject/topic selection.
type Generator interface {
	Generate(ctx context.Context, in Input) (*Round, error)
}

// FallbackPolicy controls what a generator does when generation fails.
type FallbackPolicy int

const (
	// FallbackRevert returns the error to the caller, who reverts to
	// topic selection and surfaces the failure.
	FallbackRevert FallbackPolicy = iota

	// FallbackSynthetic swallows the error and returns a round holding a
	// single static question directing the user to retry.
	FallbackSynthetic
)

// SyntheticQuestion is the placeholder question used under
// FallbackSynthetic when generation fails completely.
func SyntheticQuestion() Question {
	return Question{
		Prompt:      "Neural Link Error: The system could not generate questions. Retry?",
		Options:     []string{"Reconnect Session", "Refresh Page", "Check API Key", "Contact Support"},
		Correct:     0,
		Explanation: "This occurs when the AI provider is overloaded or the JSON format was corrupted.",
	}
}
