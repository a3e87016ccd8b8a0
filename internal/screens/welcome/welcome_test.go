package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "gateway" }
func (s *stubScreen) Title() string                           { return "Gateway" }

// loadingReader reports loading until released.
type loadingReader struct {
	loading bool
	user    *identity.User
}

func (r *loadingReader) CurrentUser() *identity.User { return r.user }
func (r *loadingReader) Loading() bool               { return r.loading }

func newTestWelcome(reader identity.SessionReader) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(reader, factory), &callCount
}

func TestKeypressWhileResolvingIsIgnored(t *testing.T) {
	reader := &loadingReader{loading: true}
	w, callCount := newTestWelcome(reader)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress during session resolution should not transition")
	}
	if *callCount != 0 {
		t.Errorf("factory called %d times during loading", *callCount)
	}

	view := w.View(80, 24)
	if !strings.Contains(view, "Establishing neural link") {
		t.Error("loading view missing uplink status")
	}
}

func TestKeypressAfterResolveEmitsReplace(t *testing.T) {
	reader := &loadingReader{user: &identity.User{FullName: "Priya Sharma"}}
	w, callCount := newTestWelcome(reader)

	view := w.View(80, 24)
	if !strings.Contains(view, "Welcome back, Priya") {
		t.Errorf("greeting missing from view")
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from keypress after resolve")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestGuestGreeting(t *testing.T) {
	w, _ := newTestWelcome(identity.StaticReader{})

	view := w.View(80, 24)
	if !strings.Contains(view, "guest researcher") {
		t.Error("expected guest greeting for signed-out operator")
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(identity.StaticReader{})

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome(identity.StaticReader{})
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
