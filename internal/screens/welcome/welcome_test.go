package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "categories" }
func (s *stubScreen) Title() string                           { return "Categories" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func TestView_ShowsDisclaimer(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	view := w.View(100, 30)
	for _, want := range []string{"Student Health Checker", "Important Disclaimer", "does not provide medical advice", "Start Assessment"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterPushesNextScreen(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from Enter")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd != nil {
		t.Error("non-Enter key should not produce a command")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}

func TestKeyHints(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if len(w.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(w.KeyHints()))
	}
}
