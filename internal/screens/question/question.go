package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
	"github.com/abhisek/symcheck/internal/ui/components"
	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/layout"
	"github.com/abhisek/symcheck/internal/ui/theme"
)

// DoneFunc returns the screen shown once the assessment completes.
type DoneFunc func(a *assessment.Assessment) screen.Screen

// QuestionScreen asks the questions of an assessment one at a time.
type QuestionScreen struct {
	assessment *assessment.Assessment
	done       DoneFunc
	choice     components.YesNo
	err        error
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a question screen for an assessment that is already
// answering.
func New(a *assessment.Assessment, done DoneFunc) *QuestionScreen {
	s := &QuestionScreen{assessment: a, done: done}
	s.resetChoice()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.assessment.Category().Name
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Yes, keys.No, keys.Left, keys.Enter, keys.Back)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	completed, err := s.assessment.Answer(s.choice.Answer)
	if err != nil {
		s.err = err
		s.resetChoice()
		return s, nil
	}
	if completed {
		next := s.done(s.assessment)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.resetChoice()
	return s, nil
}

func (s *QuestionScreen) resetChoice() {
	q, err := s.assessment.Current()
	if err != nil {
		s.err = err
		s.choice = components.YesNo{}
		return
	}
	s.choice = components.NewYesNo(q.Text)
}

func (s *QuestionScreen) View(width, height int) string {
	c := s.assessment.Category()
	n, total := s.assessment.Progress()
	cardWidth := min(width-4, 64)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", c.Icon, c.Name)))
	b.WriteString("\n\n")
	b.WriteString(components.NewStepProgress(n, total, cardWidth-6).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cardWidth - 6).Render(s.choice.View()))

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.err.Error()))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
