package result

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/action"
	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
	"github.com/abhisek/symcheck/internal/triage"
	"github.com/abhisek/symcheck/internal/ui/components"
	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/layout"
	"github.com/abhisek/symcheck/internal/ui/theme"
)

// ActionRunner performs the follow-up action offered for a level.
type ActionRunner interface {
	Run(ctx context.Context, l triage.Level) (action.Kind, error)
}

// actionDoneMsg reports the outcome of a dispatched action.
type actionDoneMsg struct {
	kind action.Kind
	err  error
}

// ResultScreen displays the triage result of a completed assessment.
type ResultScreen struct {
	assessment *assessment.Assessment
	result     triage.Result
	actions    ActionRunner
	running    bool
	status     string
	statusErr  bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a result screen for a completed assessment. An assessment
// that has not completed shows the fallback result.
func New(a *assessment.Assessment, actions ActionRunner) *ResultScreen {
	r, ok := a.Result()
	if !ok {
		r = triage.Fallback()
	}
	return &ResultScreen{assessment: a, result: r, actions: actions}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Assessment Result"
}

// Result returns the displayed result.
func (s *ResultScreen) Result() triage.Result {
	return s.result
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	bindings := make([]key.Binding, 0, 4)
	switch action.ForLevel(s.result.Level) {
	case action.KindDial:
		bindings = append(bindings, keys.Call)
	case action.KindLocate:
		bindings = append(bindings, keys.Maps)
	}
	bindings = append(bindings, keys.Restart, keys.Back, keys.Quit)
	return keys.Hints(bindings...)
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		s.running = false
		s.statusErr = msg.err != nil
		s.status = statusText(msg.kind, msg.err)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Call):
			return s, s.dispatch(action.KindDial)
		case key.Matches(msg, keys.Maps):
			return s, s.dispatch(action.KindLocate)
		case key.Matches(msg, keys.Restart):
			return s, s.HandleBack()
		}
	}
	return s, nil
}

// HandleBack resets the assessment and returns to category selection.
// Esc and r behave the same on this screen.
func (s *ResultScreen) HandleBack() tea.Cmd {
	s.assessment.Restart()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// dispatch runs the action if it is the one offered for this result.
func (s *ResultScreen) dispatch(want action.Kind) tea.Cmd {
	if s.running || s.actions == nil || action.ForLevel(s.result.Level) != want {
		return nil
	}
	s.running = true
	s.status = pendingText(want)
	s.statusErr = false

	runner := s.actions
	level := s.result.Level
	return func() tea.Msg {
		kind, err := runner.Run(context.Background(), level)
		return actionDoneMsg{kind: kind, err: err}
	}
}

func pendingText(k action.Kind) string {
	if k == action.KindDial {
		return "Connecting you to emergency services..."
	}
	return "Opening clinic search..."
}

func statusText(k action.Kind, err error) string {
	if err != nil {
		return fmt.Sprintf("Could not complete action: %v", err)
	}
	if k == action.KindDial {
		return "Calling emergency services. The number is on your clipboard."
	}
	return "Clinic search opened. The link is on your clipboard."
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	cardWidth := min(width-4, 68)
	inner := cardWidth - 6
	accent := levelColor(r.Level)

	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(r.Level.Icon()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(accent).Bold(true).Render(r.Title))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(r.Description))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recommended Actions:"))
	b.WriteString("\n")
	bullet := lipgloss.NewStyle().Foreground(accent).Render("•")
	item := lipgloss.NewStyle().Foreground(theme.Text).Width(inner - 2)
	for _, a := range r.Actions {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bullet+" ", item.Render(a)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var buttons []string
	switch action.ForLevel(r.Level) {
	case action.KindDial:
		buttons = append(buttons, components.NewButton("Call Emergency Now (c)", true).View(), "  ")
	case action.KindLocate:
		buttons = append(buttons, components.NewButton("Find Campus Clinic (m)", true).View(), "  ")
	}
	buttons = append(buttons, components.NewButton("Start New Assessment (r)", false).View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	if s.status != "" {
		fg := theme.Success
		if s.statusErr {
			fg = theme.Error
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(fg).Width(inner).Render(s.status))
	}

	card := theme.Card.
		BorderForeground(accent).
		Width(cardWidth).
		Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// levelColor returns the theme color for a triage level.
func levelColor(l triage.Level) color.Color {
	switch l {
	case triage.LevelEmergency:
		return theme.Emergency
	case triage.LevelUrgent:
		return theme.Urgent
	case triage.LevelClinic:
		return theme.Clinic
	case triage.LevelSelfCare:
		return theme.SelfCare
	default:
		return theme.Border
	}
}
