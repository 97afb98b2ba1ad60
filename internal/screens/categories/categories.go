package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
	"github.com/abhisek/symcheck/internal/ui/components"
	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/layout"
	"github.com/abhisek/symcheck/internal/ui/theme"
)

// StartFunc begins an assessment for a category and returns the screen
// that asks its questions.
type StartFunc func(categoryID string) (screen.Screen, error)

// CategoriesScreen lists the symptom categories.
type CategoriesScreen struct {
	categories []catalog.Category
	start      StartFunc
	menu       components.Menu
	err        error
}

var _ screen.Screen = (*CategoriesScreen)(nil)
var _ screen.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates the category menu for cat.
func New(cat *catalog.Catalog, start StartFunc) *CategoriesScreen {
	s := &CategoriesScreen{
		categories: cat.Categories(),
		start:      start,
	}

	items := make([]components.MenuItem, 0, len(s.categories))
	for _, c := range s.categories {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", c.Icon, c.Name),
			Action: func() tea.Cmd { return s.selectCategory(id) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoriesScreen) Title() string {
	return "Select Your Primary Symptom"
}

func (s *CategoriesScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Enter, keys.Back, keys.Quit)
}

func (s *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// Selected returns the highlighted category.
func (s *CategoriesScreen) Selected() catalog.Category {
	return s.categories[s.menu.Selected]
}

func (s *CategoriesScreen) selectCategory(id string) tea.Cmd {
	next, err := s.start(id)
	if err != nil {
		s.err = err
		return nil
	}
	s.err = nil
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *CategoriesScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Choose the symptom that concerns you most"))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(min(width-4, 40)).Render(s.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if s.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.err.Error()))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
