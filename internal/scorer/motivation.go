package scorer

import (
	"math"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

var stressMotivationDelta = map[domain.StressLevel]float64{
	domain.StressLow:      2,
	domain.StressModerate: 0,
	domain.StressHigh:     -2,
	domain.StressCritical: -3,
}

// ComputeMotivation scores motivation on 0..10.
func ComputeMotivation(stress domain.StressLevel, pattern domain.LearningPattern) int {
	m := 5 + stressMotivationDelta[stress]
	m += (pattern.CompletionRate - 0.5) * 4
	m -= pattern.ProcrastinationTendency * 2
	m = math.Max(0, math.Min(10, m))
	return int(math.Round(m))
}

// MapToPersonality derives an adaptive (fierceness, style) pair from a
// profile. The rules are a layered override chain: each later rule wins
// over the earlier ones, so the order below is load-bearing.
func MapToPersonality(profile domain.StudentProfile, now time.Time) domain.PersonalityLevel {
	f, s := 2, 0

	switch profile.StressLevel {
	case domain.StressLow:
		f--
	case domain.StressModerate:
		f, s = 3, 1
	case domain.StressHigh:
		f, s = 5, 7
	case domain.StressCritical:
		f, s = 4, 7
	}

	switch profile.LearningStyle {
	case domain.LearningAuditory:
		s = 3
	case domain.LearningVisual:
		s = 1
	case domain.LearningKinesthetic:
		s = 7
	case domain.LearningReading:
		s = 2
	}

	if profile.CurrentMotivationLevel < 3 {
		f = min(6, f+2)
		s = 7
	}
	if profile.CurrentMotivationLevel > 7 {
		f = max(0, f-1)
		s = 0
	}

	if h := now.Hour(); h < 6 || h > 22 {
		f = max(0, f-1)
	}

	return domain.PersonalityLevel{Fierceness: f, Style: s}.Clamp()
}

// Analyze builds a fresh student profile from a user's task history.
func Analyze(userID string, tasks []domain.Task, now time.Time) domain.StudentProfile {
	window := tasksInWindow(tasks, DefaultWindowDays, now)
	stress := AnalyzeStress(tasks, DefaultWindowDays, now)
	pattern := BuildPattern(window, now)
	return domain.StudentProfile{
		UserID:                 userID,
		StressLevel:            stress,
		LearningStyle:          DetectLearningStyle(BehaviorFromTasks(tasks, now.Location())),
		LearningPattern:        pattern,
		CurrentMotivationLevel: ComputeMotivation(stress, pattern),
		LastUpdated:            now,
	}
}
