// Package session implements the quiz round lifecycle: topic selection,
// loading, question navigation, read-only recap, and scoring.
package session

import (
	"math"

	"github.com/google/uuid"

	"github.com/priyam/synapseed/internal/catalog"
	"github.com/priyam/synapseed/internal/quizgen"
)

// Phase is the current screen of the quiz lifecycle.
type Phase int

const (
	PhaseTopicSelect Phase = iota
	PhaseLoading
	PhaseQuestion
	PhaseRecap
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseTopicSelect:
		return "topic-select"
	case PhaseLoading:
		return "loading"
	case PhaseQuestion:
		return "question"
	case PhaseRecap:
		return "recap"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Unanswered is the sentinel for a question the user has not answered.
const Unanswered = -1

// State is the quiz session state machine. It owns the current round,
// the answer set, and the navigation index. All methods are
// synchronous; asynchronous generation results re-enter through
// ApplyRound/ApplyError carrying the token issued at request time, and
// stale tokens are discarded.
//
// State is not safe for concurrent use. The UI event loop is its only
// caller.
type State struct {
	phase   Phase
	subject catalog.Subject
	topic   string

	// token identifies the in-flight generation request. Empty when no
	// request is outstanding.
	token string

	round   *quizgen.Round
	answers []int
	idx     int

	lastErr error
}

// New returns a fresh session in topic selection.
func New() *State {
	return &State{phase: PhaseTopicSelect}
}

func (s *State) Phase() Phase             { return s.phase }
func (s *State) Subject() catalog.Subject { return s.subject }
func (s *State) Topic() string            { return s.topic }
func (s *State) Round() *quizgen.Round    { return s.round }
func (s *State) Index() int               { return s.idx }
func (s *State) LastError() error         { return s.lastErr }

// QuestionCount returns the length of the active round, or 0.
func (s *State) QuestionCount() int {
	if s.round == nil {
		return 0
	}
	return len(s.round.Questions)
}

// Current returns the question at the navigation index. It is only
// valid in the Question and Recap phases.
func (s *State) Current() quizgen.Question {
	return s.round.Questions[s.idx]
}

// AnswerFor returns the selected option for a question index, or
// Unanswered.
func (s *State) AnswerFor(idx int) int {
	if idx < 0 || idx >= len(s.answers) {
		return Unanswered
	}
	return s.answers[idx]
}

// SelectTopic begins a new round for the given subject and topic and
// returns the generation token the eventual result must carry. Ignored
// while a request is already outstanding, returning ok=false.
func (s *State) SelectTopic(subject catalog.Subject, topic string) (token string, ok bool) {
	if s.phase == PhaseLoading {
		return "", false
	}
	s.subject = subject
	s.topic = topic
	s.phase = PhaseLoading
	s.token = uuid.NewString()
	s.lastErr = nil
	return s.token, true
}

// ApplyRound installs a generation result. Results whose token does not
// match the outstanding request are stale and dropped without touching
// any state. An empty round is rejected the same way a failure is.
func (s *State) ApplyRound(token string, round *quizgen.Round) bool {
	if s.phase != PhaseLoading || token != s.token {
		return false
	}
	s.token = ""
	if round == nil || len(round.Questions) == 0 {
		s.lastErr = &quizgen.EmptyResultError{}
		s.phase = PhaseTopicSelect
		return true
	}
	s.round = round
	s.answers = make([]int, len(round.Questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.idx = 0
	s.phase = PhaseQuestion
	return true
}

// ApplyError records a generation failure and reverts to topic
// selection. Stale tokens are dropped.
func (s *State) ApplyError(token string, err error) bool {
	if s.phase != PhaseLoading || token != s.token {
		return false
	}
	s.token = ""
	s.lastErr = err
	s.phase = PhaseTopicSelect
	return true
}

// Answer records the selected option for the current question.
// Overwriting a previous selection is allowed; answers are immutable in
// recap.
func (s *State) Answer(opt int) bool {
	if s.phase != PhaseQuestion {
		return false
	}
	if opt < 0 || opt >= len(s.round.Questions[s.idx].Options) {
		return false
	}
	s.answers[s.idx] = opt
	return true
}

// Next advances to the following question when one exists.
func (s *State) Next() bool {
	if s.phase != PhaseQuestion && s.phase != PhaseRecap {
		return false
	}
	if s.idx >= len(s.round.Questions)-1 {
		return false
	}
	s.idx++
	return true
}

// Prev moves back one question.
func (s *State) Prev() bool {
	if s.phase != PhaseQuestion && s.phase != PhaseRecap {
		return false
	}
	if s.idx <= 0 {
		return false
	}
	s.idx--
	return true
}

// Finish completes the round from the last question. Unanswered
// questions score as wrong.
func (s *State) Finish() bool {
	if s.phase != PhaseQuestion || s.idx != len(s.round.Questions)-1 {
		return false
	}
	s.phase = PhaseResults
	return true
}

// Review enters read-only recap at the first question.
func (s *State) Review() bool {
	if s.phase != PhaseResults {
		return false
	}
	s.phase = PhaseRecap
	s.idx = 0
	return true
}

// EndReview returns from recap to the results screen.
func (s *State) EndReview() bool {
	if s.phase != PhaseRecap {
		return false
	}
	s.phase = PhaseResults
	return true
}

// Restart requests a fresh round for the same topic.
func (s *State) Restart() (token string, ok bool) {
	if s.phase != PhaseResults && s.phase != PhaseRecap {
		return "", false
	}
	s.phase = PhaseTopicSelect
	return s.SelectTopic(s.subject, s.topic)
}

// Exit discards the round and answer set and returns to topic
// selection. Any in-flight generation result becomes stale.
func (s *State) Exit() {
	s.phase = PhaseTopicSelect
	s.token = ""
	s.round = nil
	s.answers = nil
	s.idx = 0
	s.lastErr = nil
}

// CorrectCount tallies answers matching the round's correct indices.
// Unanswered entries never match.
func (s *State) CorrectCount() int {
	if s.round == nil {
		return 0
	}
	count := 0
	for i, q := range s.round.Questions {
		if s.answers[i] == q.Correct {
			count++
		}
	}
	return count
}

// Score returns the percentage score, rounded half away from zero.
func (s *State) Score() int {
	n := s.QuestionCount()
	if n == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.CorrectCount()) / float64(n)))
}

// Rank maps a score to its display title.
func Rank(score int) string {
	switch {
	case score == 100:
		return "NEURAL GENIUS"
	case score >= 80:
		return "ELITE SCHOLAR"
	case score >= 50:
		return "ADVANCED BOTANIST"
	default:
		return "INITIATE LEVEL"
	}
}
