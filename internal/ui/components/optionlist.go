package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/ui/theme"
)

// OptionList renders one quiz question's options. Unlike a lock-in
// selector, the chosen option stays editable until the round finishes;
// in recap mode input is ignored and correctness marks are shown.
type OptionList struct {
	Question     string
	Options      []string
	CorrectIndex int

	Cursor int
	Chosen int // -1 until the user picks
	Recap  bool
}

// NewOptionList creates an option list with nothing chosen.
func NewOptionList(question string, options []string, correctIndex int) OptionList {
	return OptionList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and selection. In recap mode the list
// is inert.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Recap {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	}

	return o, nil
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range o.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Recap {
			prefix = "▸ "
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		if o.Recap {
			switch {
			case i == o.CorrectIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == o.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the chosen option matches.
func (o OptionList) IsCorrect() bool {
	return o.Chosen == o.CorrectIndex
}
