package chat

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	chatsvc "github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/llm"
	"github.com/priyam/synapseed/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChatScreen(t *testing.T, replies ...string) *ChatScreen {
	t.Helper()
	var canned []llm.MockResponse
	for _, r := range replies {
		content, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		canned = append(canned, llm.MockResponse{Content: content})
	}
	return New(chatsvc.NewService(llm.NewMockProvider(canned...), 0))
}

// openTalk drives the screen through mode and subject selection.
func openTalk(t *testing.T, c *ChatScreen) *ChatScreen {
	t.Helper()
	var scr screen.Screen = c
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // careers mode
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // botany subject
	cs := scr.(*ChatScreen)
	if cs.stage != stageTalk {
		t.Fatalf("expected talk stage, got %d", cs.stage)
	}
	return cs
}

func TestChatScreen_OpensWithProtocolGreeting(t *testing.T) {
	c := openTalk(t, testChatScreen(t))

	if len(c.transcript) != 1 || c.transcript[0].FromUser {
		t.Fatalf("transcript = %+v", c.transcript)
	}
	if !strings.Contains(c.transcript[0].Text, "Neural Link Established") {
		t.Errorf("greeting = %q", c.transcript[0].Text)
	}
	if !strings.Contains(c.transcript[0].Text, "CAREERS") {
		t.Errorf("greeting missing protocol: %q", c.transcript[0].Text)
	}
}

func TestChatScreen_SendAppendsReply(t *testing.T) {
	c := openTalk(t, testChatScreen(t, "Consider a PhD at IISc."))
	c.input.Model.SetValue("What next after MSc?")

	var scr screen.Screen = c
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected send command")
	}
	scr, _ = scr.Update(cmd())
	cs := scr.(*ChatScreen)

	if cs.waiting {
		t.Error("still waiting after reply")
	}
	last := cs.transcript[len(cs.transcript)-1]
	if last.FromUser || !strings.Contains(last.Text, "IISc") {
		t.Errorf("last transcript entry = %+v", last)
	}
	// History keeps both turns for the next request.
	if len(cs.history) != 2 {
		t.Errorf("history length = %d, want 2", len(cs.history))
	}
}

func TestChatScreen_EmptyInputIgnored(t *testing.T) {
	c := openTalk(t, testChatScreen(t))

	var scr screen.Screen = c
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty input should not transmit")
	}
}

func TestChatScreen_UplinkFailureShowsError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := New(chatsvc.NewService(provider, 0))
	c = openTalk(t, c)
	c.input.Model.SetValue("hello?")

	var scr screen.Screen = c
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())
	cs := scr.(*ChatScreen)

	if !strings.Contains(cs.errMsg, "uplink failed") {
		t.Errorf("errMsg = %q", cs.errMsg)
	}
	if !strings.Contains(cs.View(80, 24), "uplink failed") {
		t.Error("error not rendered")
	}
}

func TestChatScreen_StaleReplyDropped(t *testing.T) {
	c := openTalk(t, testChatScreen(t, "late reply"))
	c.input.Model.SetValue("first question")

	var scr screen.Screen = c
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	cs := scr.(*ChatScreen)

	// Disconnect and reopen before the reply lands.
	scr, _ = cs.Update(specialKey(tea.KeyEscape))
	cs = scr.(*ChatScreen)
	cs = openTalk(t, cs)

	scr, _ = cs.Update(cmd())
	cs = scr.(*ChatScreen)

	for _, e := range cs.transcript {
		if strings.Contains(e.Text, "late reply") {
			t.Error("stale reply applied to new conversation")
		}
	}
}

func TestChatScreen_EscReturnsToModeSelect(t *testing.T) {
	c := openTalk(t, testChatScreen(t))

	var scr screen.Screen = c
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	cs := scr.(*ChatScreen)
	if cs.stage != stageMode {
		t.Errorf("expected mode stage, got %d", cs.stage)
	}
}
