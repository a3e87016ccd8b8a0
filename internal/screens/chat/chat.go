// Package chat implements the A.I. hub screen: mode and subject
// selection followed by a scrolling conversation with the assistant.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/catalog"
	chatsvc "github.com/priyam/synapseed/internal/chat"
	"github.com/priyam/synapseed/internal/llm"
	"github.com/priyam/synapseed/internal/router"
	"github.com/priyam/synapseed/internal/screen"
	"github.com/priyam/synapseed/internal/ui/components"
	"github.com/priyam/synapseed/internal/ui/layout"
	"github.com/priyam/synapseed/internal/ui/theme"
)

type stage int

const (
	stageMode stage = iota
	stageSubject
	stageTalk
)

// replyMsg carries one assistant reply. Seq guards against replies
// from an abandoned conversation landing in a new one.
type replyMsg struct {
	Seq   int
	Reply string
	Err   error
}

// entry is one rendered line of the transcript.
type entry struct {
	FromUser bool
	Text     string
}

// ChatScreen hosts conversations with the assistant.
type ChatScreen struct {
	service *chatsvc.Service

	stage   stage
	mode    chatsvc.Mode
	subject catalog.Subject

	modeCursor    int
	subjectCursor int

	input      components.TextInput
	transcript []entry
	history    []llm.Message
	waiting    bool
	seq        int
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.SectorProvider = (*ChatScreen)(nil)

// New creates the A.I. hub screen.
func New(service *chatsvc.Service) *ChatScreen {
	return &ChatScreen{
		service: service,
		input:   components.NewTextInput("Transmit to M.O.A.N.A...", 0),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return nil
}

func (c *ChatScreen) Title() string {
	return "A.I. Hub"
}

func (c *ChatScreen) Sector() string {
	if c.stage == stageTalk {
		return c.mode.Label()
	}
	return "A.I. Hub"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.stage == stageTalk {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Transmit"},
			{Key: "Esc", Description: "Disconnect"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.Seq != c.seq {
			return c, nil
		}
		c.waiting = false
		if msg.Err != nil {
			c.errMsg = "ERROR: Connection to M.O.A.N.A. uplink failed."
			return c, nil
		}
		c.transcript = append(c.transcript, entry{Text: msg.Reply})
		c.history = append(c.history, llm.Message{Role: llm.RoleAssistant, Content: msg.Reply})
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.stage == stageTalk {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch c.stage {
	case stageMode:
		modes := chatsvc.Modes()
		switch key {
		case "up", "k":
			if c.modeCursor > 0 {
				c.modeCursor--
			}
		case "down", "j":
			if c.modeCursor < len(modes)-1 {
				c.modeCursor++
			}
		case "enter":
			c.mode = modes[c.modeCursor]
			c.stage = stageSubject
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return c, nil

	case stageSubject:
		subjects := catalog.Subjects()
		switch key {
		case "up", "k":
			if c.subjectCursor > 0 {
				c.subjectCursor--
			}
		case "down", "j":
			if c.subjectCursor < len(subjects)-1 {
				c.subjectCursor++
			}
		case "enter":
			c.subject = subjects[c.subjectCursor]
			c.openConversation()
			return c, c.input.Init()
		case "esc":
			c.stage = stageMode
		}
		return c, nil

	case stageTalk:
		switch key {
		case "enter":
			return c, c.send()
		case "esc":
			c.stage = stageMode
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

// openConversation resets the transcript and seeds it with the
// protocol greeting.
func (c *ChatScreen) openConversation() {
	c.stage = stageTalk
	c.seq++
	c.waiting = false
	c.errMsg = ""
	c.history = nil
	c.transcript = []entry{{Text: chatsvc.Intro(c.mode, c.subject)}}
	c.input = components.NewTextInput("Transmit to M.O.A.N.A...", 0)
}

func (c *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" || c.waiting {
		return nil
	}

	c.errMsg = ""
	c.transcript = append(c.transcript, entry{FromUser: true, Text: text})
	c.waiting = true
	c.input.Reset()

	// The request runs against a snapshot of the history; the user
	// message is appended to it only on success so a failed transmit
	// can be retried cleanly.
	service := c.service
	mode := c.mode
	subject := c.subject
	history := append([]llm.Message(nil), c.history...)
	seq := c.seq

	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: text})

	return func() tea.Msg {
		reply, err := service.Send(context.Background(), mode, subject, history, text)
		return replyMsg{Seq: seq, Reply: reply, Err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	switch c.stage {
	case stageMode:
		return c.renderPicker(width, height, "Select protocol", modeLabels(), c.modeCursor)
	case stageSubject:
		return c.renderPicker(width, height, "Select subject context", subjectLabels(), c.subjectCursor)
	default:
		return c.renderConversation(width, height)
	}
}

func (c *ChatScreen) renderPicker(width, height int, title string, labels []string, cursor int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	for i, label := range labels {
		if i == cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label))
		}
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (c *ChatScreen) renderConversation(width, height int) string {
	wrap := min(width-6, 76)

	assistantStyle := lipgloss.NewStyle().Width(wrap).Foreground(theme.Text)
	userStyle := lipgloss.NewStyle().Width(wrap).Foreground(theme.Secondary)
	nameStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var lines []string
	for _, e := range c.transcript {
		if e.FromUser {
			lines = append(lines, nameStyle.Render("  YOU"))
			lines = append(lines, userStyle.Render("  "+e.Text))
		} else {
			lines = append(lines, nameStyle.Render("  M.O.A.N.A."))
			lines = append(lines, assistantStyle.Render("  "+e.Text))
		}
		lines = append(lines, "")
	}

	if c.waiting {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  M.O.A.N.A. is processing..."))
		lines = append(lines, "")
	}
	if c.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("  "+c.errMsg))
		lines = append(lines, "")
	}

	// Show the tail of the transcript that fits above the input line.
	inputLine := fmt.Sprintf("  %s", c.input.View())
	avail := height - 2
	if avail < 1 {
		avail = 1
	}
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	b.WriteString(inputLine)
	return b.String()
}

func modeLabels() []string {
	modes := chatsvc.Modes()
	labels := make([]string, len(modes))
	for i, m := range modes {
		labels[i] = m.Label()
	}
	return labels
}

func subjectLabels() []string {
	subjects := catalog.Subjects()
	labels := make([]string, len(subjects))
	for i, s := range subjects {
		labels[i] = s.Label()
	}
	return labels
}
