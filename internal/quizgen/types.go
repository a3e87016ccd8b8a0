package quizgen

import (
	"time"

	"github.com/priyam/synapseed/internal/catalog"
)

// Question is a single validated multiple-choice question.
// Immutable once produced; discarded when a new round starts.
type Question struct {
	Prompt      string
	Options     []string // exactly 4
	Correct     int      // index into Options, 0..3
	Explanation string
}

// Round is one generated batch of questions for a single topic attempt.
type Round struct {
	Subject     catalog.Subject
	Topic       string
	Depth       string // difficulty tag embedded in the prompt
	Focus       string // focus-area tag embedded in the prompt
	Seed        int    // anti-repetition seed embedded in the prompt
	GeneratedAt time.Time
	Questions   []Question
}

// Input describes one generation request.
type Input struct {
	Subject catalog.Subject
	Topic   string
	Count   int // number of questions to request; 0 means DefaultCount
}

// DefaultCount is the number of questions requested per round.
const DefaultCount = 10
