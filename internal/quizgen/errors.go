package quizgen

import "fmt"

// ProviderError indicates the LLM call itself failed (transport, auth,
// rate limit, provider outage).
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("quiz provider failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the provider responded but the body
// could not be parsed into the expected quiz structure.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed quiz response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// EmptyResultError indicates the response parsed fine but yielded zero
// valid questions after per-entry validation.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "quiz generation produced no valid questions"
}
