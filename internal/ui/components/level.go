package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

// LevelColor returns the display color for a proficiency level.
func LevelColor(l scorer.Level) color.Color {
	switch l {
	case scorer.LevelExpert:
		return theme.LevelExpert
	case scorer.LevelProficient:
		return theme.LevelProficient
	case scorer.LevelCompetent:
		return theme.LevelCompetent
	case scorer.LevelBeginner:
		return theme.LevelBeginner
	case scorer.LevelNovice:
		return theme.LevelNovice
	}
	return theme.TextDim
}

// LevelBadge renders the level name in its color.
func LevelBadge(l scorer.Level) string {
	return lipgloss.NewStyle().
		Foreground(LevelColor(l)).
		Bold(true).
		Render(string(l))
}
