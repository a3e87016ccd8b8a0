package catalog

import "fmt"

// Subject is one of the science disciplines the app covers.
// The set is closed: unknown subject ids are rejected at parse time
// instead of silently falling back to a default.
type Subject int

const (
	SubjectBotany Subject = iota
	SubjectPhysics
	SubjectChemistry
	SubjectZoology
)

// UnknownSubjectError is returned when a subject id is not in the catalog.
type UnknownSubjectError struct {
	ID string
}

func (e *UnknownSubjectError) Error() string {
	return fmt.Sprintf("unknown subject: %q", e.ID)
}

var subjectIDs = map[Subject]string{
	SubjectBotany:    "botany",
	SubjectPhysics:   "physics",
	SubjectChemistry: "chemistry",
	SubjectZoology:   "zoology",
}

var subjectLabels = map[Subject]string{
	SubjectBotany:    "Botany",
	SubjectPhysics:   "Physics",
	SubjectChemistry: "Chemistry",
	SubjectZoology:   "Zoology",
}

// ID returns the stable lowercase identifier, e.g. "botany".
func (s Subject) ID() string {
	return subjectIDs[s]
}

// Label returns the display name, e.g. "Botany".
func (s Subject) Label() string {
	return subjectLabels[s]
}

func (s Subject) String() string {
	return s.ID()
}

// ParseSubject resolves a subject id to its Subject value.
func ParseSubject(id string) (Subject, error) {
	for s, sid := range subjectIDs {
		if sid == id {
			return s, nil
		}
	}
	return 0, &UnknownSubjectError{ID: id}
}

// Subjects returns all subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectBotany, SubjectPhysics, SubjectChemistry, SubjectZoology}
}
