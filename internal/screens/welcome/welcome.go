package welcome

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
	"github.com/abhisek/symcheck/internal/ui/components"
	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/layout"
	"github.com/abhisek/symcheck/internal/ui/theme"
)

const disclaimer = "This tool does not provide medical advice. " +
	"For emergencies, call local emergency services immediately."

// WelcomeScreen shows the disclaimer and starts the assessment flow.
type WelcomeScreen struct {
	next func() screen.Screen
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that pushes the screen produced by next when
// the user starts.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start Assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(kmsg, keys.Enter) {
		return w, nil
	}
	next := w.next()
	return w, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cardWidth := min(width-4, 60)

	notice := lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true).
		Render("⚠ Important Disclaimer")
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cardWidth - 6).
		Render(disclaimer)
	card := theme.Card.
		BorderForeground(theme.Warning).
		Width(cardWidth).
		Render(notice + "\n" + body)

	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.NewButton("Start Assessment", true).View()),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("press Enter to begin")),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
