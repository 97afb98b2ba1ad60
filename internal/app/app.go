package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/assessment"
	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/logging"
	"github.com/abhisek/symcheck/internal/router"
	"github.com/abhisek/symcheck/internal/screen"
	"github.com/abhisek/symcheck/internal/screens/categories"
	"github.com/abhisek/symcheck/internal/screens/question"
	"github.com/abhisek/symcheck/internal/screens/result"
	"github.com/abhisek/symcheck/internal/screens/welcome"
	"github.com/abhisek/symcheck/internal/triage"
	"github.com/abhisek/symcheck/internal/ui/keys"
	"github.com/abhisek/symcheck/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Catalog *catalog.Catalog
	Policy  triage.Policy
	Actions result.ActionRunner
	Logger  *zap.Logger
}

func (o *Options) defaults() {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Policy == nil {
		o.Policy = triage.NewEarlyExit()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(opts Options) AppModel {
	opts.defaults()
	m := AppModel{opts: opts}
	m.router = router.New(welcome.New(m.categoriesScreen))
	return m
}

func (m AppModel) categoriesScreen() screen.Screen {
	return categories.New(m.opts.Catalog, m.startAssessment)
}

// startAssessment begins a fresh assessment for a category.
func (m AppModel) startAssessment(categoryID string) (screen.Screen, error) {
	a := assessment.New(m.opts.Catalog, m.opts.Policy,
		assessment.WithObserver(logging.AssessmentObserver(m.opts.Logger, m.opts.Policy.Name())))
	if err := a.Start(categoryID); err != nil {
		m.opts.Logger.Warn("Assessment start failed",
			zap.String("category", categoryID), zap.Error(err))
		return nil, err
	}
	return question.New(a, m.resultScreen), nil
}

func (m AppModel) resultScreen(a *assessment.Assessment) screen.Screen {
	s := result.New(a, m.opts.Actions)
	logging.Result(m.opts.Logger, a.ID(), s.Result())
	return s
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if h, ok := m.router.Active().(screen.BackHandler); ok {
				return m, h.HandleBack()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, string(m.opts.Policy.Name()), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = keys.Hints(keys.Back, keys.Quit)
	} else {
		footerHints = keys.Hints(keys.Up, keys.Enter, keys.Quit)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
