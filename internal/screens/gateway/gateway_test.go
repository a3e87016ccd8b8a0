package gateway

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/synapseed/internal/identity"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	quizscreen "github.com/priyam/synapseed/internal/screens/quiz"
	"github.com/priyam/synapseed/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testGateway() *GatewayScreen {
	return New(identity.StaticReader{}, nil, nil, nil)
}

func TestGateway_FirstEntryOpensQuiz(t *testing.T) {
	g := testGateway()

	var scr screen.Screen = g
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from menu selection")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	// With no generator the sector entry degrades to a placeholder.
	if _, isQuiz := push.Screen.(*quizscreen.QuizScreen); isQuiz {
		t.Error("expected placeholder without a generator")
	}
}

func TestGateway_StatsShownWhenLoaded(t *testing.T) {
	g := testGateway()

	var scr screen.Screen = g
	scr, _ = scr.Update(statsLoadedMsg{Stats: store.RoundStats{
		TotalRounds:  4,
		AverageScore: 72.5,
		BestScore:    90,
	}})
	gs := scr.(*GatewayScreen)

	view := gs.View(100, 30)
	if !strings.Contains(view, "Rounds: 4") {
		t.Errorf("stats line missing from view")
	}
}

func TestGateway_StatsErrorIgnored(t *testing.T) {
	g := testGateway()

	var scr screen.Screen = g
	scr, _ = scr.Update(statsLoadedMsg{Err: errors.New("db closed")})
	gs := scr.(*GatewayScreen)

	if gs.hasStats {
		t.Error("failed stats load must not mark stats present")
	}
	if gs.View(100, 30) == "" {
		t.Error("view must still render")
	}
}

func TestGateway_OperatorShown(t *testing.T) {
	g := New(identity.StaticReader{User: &identity.User{FullName: "Priya Sharma"}}, nil, nil, nil)

	view := g.View(100, 30)
	if !strings.Contains(view, "Operator: Priya") {
		t.Error("operator name missing from view")
	}
}
