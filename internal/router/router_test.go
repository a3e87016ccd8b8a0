package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/synapseed/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "gateway"})

	quiz := &stubScreen{title: "assessment"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "assessment" {
		t.Errorf("expected active 'assessment', got %q", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "gateway"})
	r.Push(&stubScreen{title: "assessment"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "gateway" {
		t.Errorf("expected active 'gateway', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "gateway"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	gw := &stubScreen{title: "gateway"}
	r.Replace(gw)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "gateway" {
		t.Errorf("expected active 'gateway', got %q", r.Active().Title())
	}
	if !gw.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	gw := &stubScreen{title: "gateway"}
	r.Update(ReplaceScreenMsg{Screen: gw})

	if r.Active().Title() != "gateway" {
		t.Errorf("expected active 'gateway', got %q", r.Active().Title())
	}
	if !gw.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "gateway"})
	r.Push(&stubScreen{title: "hub"})

	hist := &stubScreen{title: "history"}
	r.Replace(hist)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "history" {
		t.Errorf("expected active 'history', got %q", r.Active().Title())
	}
}
