package catalog

import (
	"errors"
	"testing"
)

func TestParseSubject_KnownIDs(t *testing.T) {
	for _, s := range Subjects() {
		got, err := ParseSubject(s.ID())
		if err != nil {
			t.Fatalf("ParseSubject(%q): %v", s.ID(), err)
		}
		if got != s {
			t.Errorf("ParseSubject(%q) = %v, want %v", s.ID(), got, s)
		}
	}
}

func TestParseSubject_UnknownID(t *testing.T) {
	_, err := ParseSubject("alchemy")
	if err == nil {
		t.Fatal("expected error for unknown subject")
	}
	var unknown *UnknownSubjectError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSubjectError, got %T", err)
	}
	if unknown.ID != "alchemy" {
		t.Errorf("unknown.ID = %q, want %q", unknown.ID, "alchemy")
	}
}

func TestParseSubject_NoSilentFallback(t *testing.T) {
	// An empty id must not resolve to a default subject.
	if _, err := ParseSubject(""); err == nil {
		t.Fatal("expected error for empty subject id")
	}
}

func TestTopics_AllSubjectsNonEmpty(t *testing.T) {
	for _, s := range Subjects() {
		if len(s.Topics()) == 0 {
			t.Errorf("subject %s has no topics", s)
		}
		if len(s.FocusAreas()) == 0 {
			t.Errorf("subject %s has no focus areas", s)
		}
	}
}

func TestSubjectLabels(t *testing.T) {
	if SubjectBotany.Label() != "Botany" {
		t.Errorf("Label() = %q, want Botany", SubjectBotany.Label())
	}
	if SubjectBotany.ID() != "botany" {
		t.Errorf("ID() = %q, want botany", SubjectBotany.ID())
	}
}
