package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		b    key.Binding
		want bool
	}{
		{"y", tea.KeyPressMsg{Code: 'y', Text: "y"}, Yes, true},
		{"n", tea.KeyPressMsg{Code: 'n', Text: "n"}, No, true},
		{"y is not no", tea.KeyPressMsg{Code: 'y', Text: "y"}, No, false},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, Enter, true},
		{"down arrow", tea.KeyPressMsg{Code: tea.KeyDown}, Down, true},
		{"j", tea.KeyPressMsg{Code: 'j', Text: "j"}, Down, true},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}, Back, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.b); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHints_DedupesAndSkipsDisabled(t *testing.T) {
	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Hidden"), key.WithDisabled())
	hints := Hints(Up, Down, Enter, disabled, Quit)
	if len(hints) != 3 {
		t.Fatalf("expected 3 hints, got %d: %+v", len(hints), hints)
	}
	if hints[0].Key != "↑↓" || hints[1].Key != "Enter" || hints[2].Key != "Ctrl+C" {
		t.Errorf("unexpected hints: %+v", hints)
	}
}
