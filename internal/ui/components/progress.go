package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/ui/theme"
)

// StepProgress shows how far through a question sequence the user is:
// a "Question i of n" line above a bar with the percentage on its right.
type StepProgress struct {
	Current int // 1-based
	Total   int
	Width   int
}

// NewStepProgress creates a progress indicator for question current of total.
func NewStepProgress(current, total, width int) StepProgress {
	return StepProgress{Current: current, Total: total, Width: width}
}

// Percent returns the completed fraction in [0, 1].
func (p StepProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

func (p StepProgress) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", p.Current, p.Total))

	percent := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%4d%%", int(p.Percent()*100)))

	barWidth := max(p.Width-lipgloss.Width(percent)-1, 4)
	filled := int(float64(barWidth) * p.Percent())

	bar := lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	return label + "\n" + bar + " " + percent
}
