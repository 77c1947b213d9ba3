package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// TaskRow pairs a task with its urgency at render time.
type TaskRow struct {
	Task    *domain.Task
	Urgency urgency.Result
}

// FormatTaskList renders tasks as a table, one row per task.
func FormatTaskList(rows []TaskRow) string {
	headers := []string{"ID", "TITLE", "DUE", "DIFFICULTY", "URGENCY", "WHEN"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		when := Dim("--")
		if r.Urgency.State != domain.UrgencyCompleted && r.Urgency.Parsed {
			when = UrgencyStyle(r.Urgency.Color).Render(RelativeDue(r.Urgency.MinutesUntilDue))
		}
		title := Bold(r.Task.Title)
		if r.Task.Completed {
			title = Dim(r.Task.Title)
		}
		out = append(out, []string{
			Dim(r.Task.DisplayID()),
			title,
			DueLabel(r.Task.DueDate, r.Task.DueTime),
			DifficultyPill(r.Task.Difficulty),
			UrgencyIndicator(r.Urgency.State, r.Urgency.Color),
			when,
		})
	}
	return RenderTable(headers, out)
}

// FormatTaskDetail renders one task in a box.
func FormatTaskDetail(r TaskRow) string {
	t := r.Task
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-12s", label)), value)
	}

	line("ID", t.ID)
	line("Due", DueLabel(t.DueDate, t.DueTime))
	line("Urgency", UrgencyIndicator(r.Urgency.State, r.Urgency.Color))
	if r.Urgency.Parsed && !t.Completed {
		line("Time left", RelativeDue(r.Urgency.MinutesUntilDue))
	}
	line("Difficulty", DifficultyPill(t.Difficulty))
	if t.Category != "" {
		line("Category", t.Category)
	}
	line("Source", string(t.Source))
	if at, ok := t.CompletionTime(); ok {
		line("Completed", formatTimestamp(at))
	}
	line("Created", formatTimestamp(t.CreatedAt))
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}
	return RenderBox(t.Title, strings.TrimRight(b.String(), "\n"))
}
