package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with a purpose label ("quiz", "chat")
// that the event log records alongside each request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" if none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeCtxKey).(string); ok {
		return v
	}
	return "unknown"
}
