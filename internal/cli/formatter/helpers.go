package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDue describes minutes until a deadline: "in 45m", "in 3h",
// "in 2d", or "20m ago" once it has passed.
func RelativeDue(minutes float64) string {
	past := minutes < 0
	m := math.Abs(minutes)

	var text string
	switch {
	case m < 60:
		text = fmt.Sprintf("%dm", int(math.Round(m)))
	case m < 48*60:
		text = fmt.Sprintf("%dh", int(math.Round(m/60)))
	default:
		text = fmt.Sprintf("%dd", int(math.Round(m/(24*60))))
	}
	if past {
		return text + " ago"
	}
	return "in " + text
}

// DueLabel renders a task's due date and optional time.
func DueLabel(date, clock string) string {
	if clock == "" {
		return date
	}
	return date + " " + clock
}

// ScoreBar renders a 0..max score as filled and empty blocks.
func ScoreBar(score, maxScore, width int) string {
	if maxScore <= 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(min(max(score, 0), maxScore)) / float64(maxScore) * float64(width)))
	return StyleGreen.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", width-filled))
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rate*100)))
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Local().Format("2006-01-02 15:04")
}
