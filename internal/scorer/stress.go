package scorer

import (
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// DefaultWindowDays is the look-back window used when none is given.
const DefaultWindowDays = 7

// StressReport carries the inputs and result of a stress analysis.
type StressReport struct {
	Level          domain.StressLevel
	Score          float64
	WindowTasks    int
	OverdueCount   int
	UrgentCount    int
	CompletionRate float64
	AvgTasksPerDay float64
}

// AnalyzeStress classifies the stress level implied by tasks created in the
// last windowDays. An empty window is LOW.
func AnalyzeStress(tasks []domain.Task, windowDays int, now time.Time) domain.StressLevel {
	return ScoreStress(tasks, windowDays, now).Level
}

// ScoreStress is AnalyzeStress with the intermediate figures exposed.
func ScoreStress(tasks []domain.Task, windowDays int, now time.Time) StressReport {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	window := tasksInWindow(tasks, windowDays, now)
	report := StressReport{Level: domain.StressLow, WindowTasks: len(window)}
	if len(window) == 0 {
		return report
	}

	completed := 0
	for _, t := range window {
		if t.Completed {
			completed++
			continue
		}
		due, _, err := urgency.DueAt(t, now.Location())
		if err != nil {
			continue
		}
		until := due.Sub(now)
		switch {
		case until < 0:
			report.OverdueCount++
		case until <= 24*time.Hour:
			report.UrgentCount++
		}
	}
	report.CompletionRate = float64(completed) / float64(len(window))
	report.AvgTasksPerDay = float64(len(window)) / float64(windowDays)

	score := 2 * float64(report.OverdueCount)
	if report.CompletionRate < 0.6 {
		score += 2
	}
	if report.CompletionRate < 0.3 {
		score += 3
	}
	if report.AvgTasksPerDay > 5 {
		score += 2
	}
	if report.AvgTasksPerDay > 8 {
		score += 3
	}
	score += 1.5 * float64(report.UrgentCount)
	report.Score = score

	switch {
	case score >= 8:
		report.Level = domain.StressCritical
	case score >= 5:
		report.Level = domain.StressHigh
	case score >= 2:
		report.Level = domain.StressModerate
	default:
		report.Level = domain.StressLow
	}
	return report
}

func tasksInWindow(tasks []domain.Task, windowDays int, now time.Time) []domain.Task {
	cutoff := now.AddDate(0, 0, -windowDays)
	var out []domain.Task
	for _, t := range tasks {
		if !t.CreatedAt.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
