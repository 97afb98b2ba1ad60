package components

import "github.com/abhisek/symcheck/internal/ui/theme"

// Button renders a labelled button. Key handling belongs to the owning
// screen, which decides which button is active.
type Button struct {
	Label  string
	Active bool
}

func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
