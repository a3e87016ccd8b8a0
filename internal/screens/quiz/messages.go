package quiz

import (
	"time"

	"github.com/priyam/synapseed/internal/quizgen"
)

// roundReadyMsg is sent when round generation completes. The token ties
// the result to the request that asked for it; the state machine drops
// results whose token has gone stale.
type roundReadyMsg struct {
	Token string
	Round *quizgen.Round
}

// roundFailedMsg is sent when round generation fails.
type roundFailedMsg struct {
	Token string
	Err   error
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

// persistDoneMsg confirms the round and its answers were written to the
// event log.
type persistDoneMsg struct {
	Err error
}
