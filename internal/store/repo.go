package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RoundEventData captures a completed quiz round.
type RoundEventData struct {
	RoundID       string
	Subject       string
	Topic         string
	Depth         string
	Focus         string
	Seed          int
	QuestionCount int
	CorrectCount  int
	Score         int
	Rank          string
}

// RoundRecord is a stored round event.
type RoundRecord struct {
	RoundEventData
	Sequence  int64
	Timestamp time.Time
}

// RoundStats aggregates stored rounds for the stats view.
type RoundStats struct {
	TotalRounds     int
	AverageScore    float64
	BestScore       int
	RoundsBySubject map[string]int
}

// AnswerEventData captures one answered or skipped question.
type AnswerEventData struct {
	RoundID        string
	QuestionIndex  int
	QuestionText   string
	CorrectOption  int
	SelectedOption int // -1 when unanswered
	Correct        bool
}

// AnswerRecord is a stored answer event.
type AnswerRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates token usage for one purpose or model.
type LLMUsageStat struct {
	Key          string // purpose or model ID
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendRound records a completed quiz round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// AppendAnswer records one answer within a round.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryRounds returns stored rounds, newest first.
	QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)

	// QueryAnswers returns the answers of one round in question order.
	QueryAnswers(ctx context.Context, roundID string) ([]AnswerRecord, error)

	// RoundStats aggregates all stored rounds.
	RoundStats(ctx context.Context) (RoundStats, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns stored LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event by row ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)
}
