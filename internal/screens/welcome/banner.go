package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/symcheck/internal/ui/theme"
)

const (
	bannerIcon     = "🏥"
	bannerTitle    = "Student Health Checker"
	bannerSubtitle = "Quick symptom assessment tool"
)

// RenderBanner returns the icon, title and tagline stacked and centred
// within width.
func RenderBanner(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(bannerTitle)
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(bannerSubtitle)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, bannerIcon, "", title, subtitle))
}
