package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/theme"
)

// YesNo is a two-button answer selector. "y" and "n" answer directly;
// arrows move the highlight and Enter submits it.
type YesNo struct {
	Question  string
	Selected  bool // true when "Yes" is highlighted
	Submitted bool
	Answer    bool
}

// NewYesNo creates a selector with "No" highlighted.
func NewYesNo(question string) YesNo {
	return YesNo{Question: question}
}

// Init returns nil.
func (m YesNo) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m YesNo) Update(msg tea.Msg) (YesNo, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Yes):
		m.submit(true)
	case key.Matches(kmsg, keys.No):
		m.submit(false)
	case key.Matches(kmsg, keys.Left):
		m.Selected = false
	case key.Matches(kmsg, keys.Right):
		m.Selected = true
	case key.Matches(kmsg, keys.Enter):
		m.submit(m.Selected)
	}

	return m, nil
}

func (m *YesNo) submit(answer bool) {
	m.Selected = answer
	m.Answer = answer
	m.Submitted = true
}

// View renders the question and both buttons, "No" first.
func (m YesNo) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	no := NewButton("No (n)", !m.Selected).View()
	yes := NewButton("Yes (y)", m.Selected).View()
	s += lipgloss.JoinHorizontal(lipgloss.Center, no, "   ", yes)
	return s
}
