package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/store"
)

type mockEventRepo struct {
	store.EventRepo

	rounds     []store.RoundRecord
	answers    map[string][]store.AnswerRecord
	queryErr   error
	answerErrs map[string]error
}

func (m *mockEventRepo) QueryRounds(_ context.Context, _ store.QueryOpts) ([]store.RoundRecord, error) {
	return m.rounds, m.queryErr
}

func (m *mockEventRepo) QueryAnswers(_ context.Context, roundID string) ([]store.AnswerRecord, error) {
	if err := m.answerErrs[roundID]; err != nil {
		return nil, err
	}
	return m.answers[roundID], nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRecords() []store.RoundRecord {
	return []store.RoundRecord{
		{
			RoundEventData: store.RoundEventData{
				RoundID:       "r2",
				Subject:       "physics",
				Topic:         "Optics & Light",
				QuestionCount: 10,
				CorrectCount:  8,
				Score:         80,
				Rank:          "ELITE SCHOLAR",
			},
			Sequence:  12,
			Timestamp: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			RoundEventData: store.RoundEventData{
				RoundID:       "r1",
				Subject:       "botany",
				Topic:         "Genetics",
				QuestionCount: 10,
				CorrectCount:  5,
				Score:         50,
				Rank:          "ADVANCED BOTANIST",
			},
			Sequence:  3,
			Timestamp: time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func loadedHistory(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	var scr screen.Screen = s
	scr, _ = scr.Update(msg)
	hs := scr.(*HistoryScreen)
	if !hs.loaded {
		t.Fatal("history not loaded")
	}
	return hs
}

func TestHistory_ListRendersRounds(t *testing.T) {
	s := loadedHistory(t, &mockEventRepo{rounds: testRecords()})

	view := s.View(120, 30)
	for _, want := range []string{"Optics & Light", "ELITE SCHOLAR", "Genetics", "80%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_EmptyState(t *testing.T) {
	s := loadedHistory(t, &mockEventRepo{})

	if !strings.Contains(s.View(100, 30), "No missions recorded") {
		t.Error("empty state message missing")
	}
}

func TestHistory_QueryErrorShown(t *testing.T) {
	s := loadedHistory(t, &mockEventRepo{queryErr: errors.New("db locked")})

	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("query error not surfaced")
	}
}

func TestHistory_ExpandLoadsAnswers(t *testing.T) {
	repo := &mockEventRepo{
		rounds: testRecords(),
		answers: map[string][]store.AnswerRecord{
			"r2": {
				{AnswerEventData: store.AnswerEventData{
					RoundID:       "r2",
					QuestionIndex: 0,
					QuestionText:  "What is total internal reflection?",
					Correct:       true,
				}},
			},
		},
	}
	s := loadedHistory(t, repo)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected answer fetch command")
	}
	scr, _ = scr.Update(cmd())
	hs := scr.(*HistoryScreen)

	view := hs.View(120, 30)
	if !strings.Contains(view, "total internal reflection") {
		t.Error("expanded answers missing from view")
	}

	// Second enter collapses without refetching.
	scr, cmd = hs.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("collapse should not refetch")
	}
	hs = scr.(*HistoryScreen)
	if strings.Contains(hs.View(120, 30), "total internal reflection") {
		t.Error("details still rendered after collapse")
	}
}

func TestHistory_Navigation(t *testing.T) {
	s := loadedHistory(t, &mockEventRepo{rounds: testRecords()})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	hs := scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selected = %d, want 1", hs.selected)
	}
	scr, _ = hs.Update(specialKey(tea.KeyDown))
	hs = scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selection ran past end: %d", hs.selected)
	}
}
