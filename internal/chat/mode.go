// Package chat implements the assistant's conversational modes for
// careers, study-abroad, and study-plan guidance.
package chat

import "fmt"

// Mode selects the assistant persona for a conversation. The set is
// closed; unknown ids are rejected rather than silently defaulted.
type Mode int

const (
	ModeCareers Mode = iota
	ModeAbroad
	ModeStudyPlan
	ModeResearch
)

// UnknownModeError reports a mode id outside the closed set.
type UnknownModeError struct {
	ID string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown chat mode: %q", e.ID)
}

var modeIDs = map[Mode]string{
	ModeCareers:   "careers",
	ModeAbroad:    "abroad",
	ModeStudyPlan: "study-plan",
	ModeResearch:  "research",
}

var modeLabels = map[Mode]string{
	ModeCareers:   "Career Trajectory",
	ModeAbroad:    "Study Abroad",
	ModeStudyPlan: "Study Planner",
	ModeResearch:  "Research Assistant",
}

// modeInstructions are the per-mode system prompt fragments.
var modeInstructions = map[Mode]string{
	ModeCareers:   "You are currently in CAREERS mode: a science career specialist. Focus on MSc/PhD and industry paths in India. Provide specific company names and research institutes.",
	ModeAbroad:    "You are currently in ABROAD mode: an expert in German DAAD scholarships, European science PhDs, and international research grants.",
	ModeStudyPlan: "You are currently in STUDY-PLAN mode: a productivity coach for scientists. Help organize research work and exam preparation.",
	ModeResearch:  "You are currently in RESEARCH mode: a general scientific research assistant.",
}

func (m Mode) ID() string {
	return modeIDs[m]
}

func (m Mode) Label() string {
	return modeLabels[m]
}

func (m Mode) String() string {
	return m.ID()
}

// ParseMode resolves a mode id string.
func ParseMode(id string) (Mode, error) {
	for m, s := range modeIDs {
		if s == id {
			return m, nil
		}
	}
	return 0, &UnknownModeError{ID: id}
}

// Modes lists all chat modes in display order.
func Modes() []Mode {
	return []Mode{ModeCareers, ModeAbroad, ModeStudyPlan, ModeResearch}
}
