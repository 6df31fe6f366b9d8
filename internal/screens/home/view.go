package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/components"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = `  █████╗ ██╗ ██████╗
 ██╔══██╗██║██╔═══██╗
 ███████║██║██║   ██║
 ██╔══██║██║██║▄▄ ██║
 ██║  ██║██║╚██████╔╝
 ╚═╝  ╚═╝╚═╝ ╚══▀▀═╝`

const titleCompact = "A · I · Q"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar summarises the last recorded result in a bordered box
// matching content width.
func renderStatsBar(res *store.Result, loadErr error, cw int, compact bool) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	score := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	code := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)

	var stats string
	switch {
	case loadErr != nil:
		stats = lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ could not load last result")
	case res == nil:
		stats = dim.Render("NO ASSESSMENT YET")
	case compact:
		stats = fmt.Sprintf("%s %s",
			score.Render(fmt.Sprintf("★%d", res.Score)),
			components.LevelBadge(res.Level),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			score.Render(fmt.Sprintf("★ %d/100", res.Score)),
			components.LevelBadge(res.Level),
			code.Render(res.CertificateCode),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(labels []string, selected, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
			continue
		}
		buttons = append(buttons, components.Button(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain text lines for very small
// terminals where bordered buttons would overflow.
func renderMenuCompact(labels []string, selected, cw int, disabled map[int]bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   "+label))
		case i == selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+label+" "))
		default:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
