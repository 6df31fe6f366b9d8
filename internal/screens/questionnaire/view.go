package questionnaire

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/ui/components"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

func (q *Screen) View(width, height int) string {
	if q.state == nil {
		return renderMessage(width, height, q.errMsg, theme.Error)
	}
	if q.confirmQuit {
		return renderMessage(width, height,
			"Leave the assessment?\n\nYour answers will not be saved.\n\n(y/n)", theme.Accent)
	}
	if q.submitting {
		return renderMessage(width, height, "Scoring your answers...", theme.TextDim)
	}
	if q.errMsg != "" {
		return renderMessage(width, height, q.errMsg, theme.Error)
	}
	return q.renderQuestion(width)
}

func (q *Screen) renderQuestion(width int) string {
	st := q.state
	cw := min(width-4, 90)
	if cw < 20 {
		cw = 20
	}

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d   ·   %d answered", st.Current, st.Total(), st.Answered()))
	b.WriteString(info)
	b.WriteString("\n")

	bar := components.ProgressBar{Percent: st.Progress(), ShowPercent: true, Width: cw}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	question := st.CurrentQuestion()
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(question.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Render(question.Prompt))
	b.WriteString("\n")
	if question.Hint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.TextDim).
			Italic(true).
			Render(question.Hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	q.area.SetWidth(cw)
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(q.area.View()))
	b.WriteString("\n")

	counter := fmt.Sprintf("%d/%d characters", len([]rune(q.area.Value())), answerCharLimit)
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Right).
		Foreground(theme.TextDim).
		Render(counter))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderMessage(width, height int, text string, fg color.Color) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
