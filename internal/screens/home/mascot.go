package home

import (
	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no result yet
	MascotCelebrating                      // proficient or better
	MascotNudge                            // novice or beginner
)

const mascotIdle = `┌┴┴┴┴┴┐
┤ ◉ ◉ ├
┤  ▽  ├
┤ AIQ ├
└┬┬┬┬┬┘`

const mascotCelebrating = `┌┴┴┴┴┴┐
┤ ★ ★ ├
┤  ▿  ├
┤ AIQ ├
└┬┬┬┬┬┘
 ╚═══╝`

const mascotNudge = `┌┴┴┴┴┴┐
┤ ◉ ◉ ├ ?
┤  ─  ├
┤ AIQ ├
└┬┬┬┬┬┘`

// mascotFor picks the variant for the last recorded level.
func mascotFor(level scorer.Level) MascotVariant {
	switch level {
	case scorer.LevelProficient, scorer.LevelExpert:
		return MascotCelebrating
	case scorer.LevelNovice, scorer.LevelBeginner:
		return MascotNudge
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Secondary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Highlight
	case MascotNudge:
		art = mascotNudge
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
