package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/symcheck/internal/ui/layout"
)

// Bindings shared by the screens.
var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Left = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←→", "Choose"),
	)
	Right = key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("←→", "Choose"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Yes = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "Yes"),
	)
	No = key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "No"),
	)
	Call = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Call emergency"),
	)
	Maps = key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Find clinic"),
	)
	Restart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "New assessment"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts bindings into footer hints, skipping disabled ones and
// repeated help keys.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	seen := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
