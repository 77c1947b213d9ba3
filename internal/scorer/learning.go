package scorer

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// Behavior summarises how a student uses the app.
type Behavior struct {
	VoiceRatio           float64 // share of tasks captured by voice
	AvgDescriptionLength float64 // characters
	AIInteractionRate    float64 // share of tasks created through the assistant or voice
	ActiveHours          []int   // local hours at which tasks were completed
}

const shortDescriptionChars = 50

// DetectLearningStyle classifies behaviour into a learning style, defaulting
// to visual when the signals are absent or ambiguous.
func DetectLearningStyle(b Behavior) domain.LearningStyle {
	switch {
	case b.VoiceRatio > 0.6 && b.AIInteractionRate > 0.7:
		return domain.LearningAuditory
	case b.AvgDescriptionLength > 100 && b.VoiceRatio < 0.3:
		return domain.LearningReading
	case b.AvgDescriptionLength < shortDescriptionChars && activeDuringDay(b.ActiveHours):
		return domain.LearningKinesthetic
	default:
		return domain.LearningVisual
	}
}

func activeDuringDay(hours []int) bool {
	for _, h := range hours {
		if h >= 9 && h <= 17 {
			return true
		}
	}
	return false
}

// BehaviorFromTasks derives behaviour signals from a task history.
func BehaviorFromTasks(tasks []domain.Task, loc *time.Location) Behavior {
	var b Behavior
	if len(tasks) == 0 {
		return b
	}
	var voice, assisted, descChars int
	for _, t := range tasks {
		switch t.Source {
		case domain.SourceVoice:
			voice++
			assisted++
		case domain.SourceAssistant:
			assisted++
		}
		descChars += utf8.RuneCountInString(t.Description)
	}
	n := float64(len(tasks))
	b.VoiceRatio = float64(voice) / n
	b.AIInteractionRate = float64(assisted) / n
	b.AvgDescriptionLength = float64(descChars) / n
	b.ActiveHours = completionHours(tasks, loc)
	return b
}

func completionHours(tasks []domain.Task, loc *time.Location) []int {
	if loc == nil {
		loc = time.Local
	}
	seen := map[int]bool{}
	hours := []int{}
	for _, t := range tasks {
		at, ok := t.CompletionTime()
		if !ok {
			continue
		}
		h := at.In(loc).Hour()
		if !seen[h] {
			seen[h] = true
			hours = append(hours, h)
		}
	}
	slices.Sort(hours)
	return hours
}

// BuildPattern summarises completion habits over the given tasks.
func BuildPattern(tasks []domain.Task, now time.Time) domain.LearningPattern {
	p := domain.LearningPattern{
		PreferredTimeOfDay: domain.TimeMorning,
		LastActiveHours:    completionHours(tasks, now.Location()),
	}
	if len(tasks) == 0 {
		return p
	}

	var completed, late, openOverdue int
	var durationSum float64
	var durationCount int
	buckets := map[domain.TimeOfDay]int{}
	for _, t := range tasks {
		due, _, dueErr := urgency.DueAt(t, now.Location())
		at, done := t.CompletionTime()
		if !done {
			if dueErr == nil && due.Before(now) {
				openOverdue++
			}
			continue
		}
		completed++
		if dueErr == nil && at.After(due) {
			late++
		}
		if d := at.Sub(t.CreatedAt).Minutes(); d >= 0 {
			durationSum += d
			durationCount++
		}
		buckets[timeOfDay(at.In(now.Location()).Hour())]++
	}

	n := float64(len(tasks))
	p.CompletionRate = float64(completed) / n
	p.ProcrastinationTendency = float64(late+openOverdue) / n
	if durationCount > 0 {
		p.AverageTaskDuration = durationSum / float64(durationCount)
	}
	best := 0
	for _, tod := range []domain.TimeOfDay{domain.TimeMorning, domain.TimeAfternoon, domain.TimeEvening, domain.TimeNight} {
		if buckets[tod] > best {
			best = buckets[tod]
			p.PreferredTimeOfDay = tod
		}
	}
	return p
}

func timeOfDay(hour int) domain.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return domain.TimeMorning
	case hour >= 12 && hour < 17:
		return domain.TimeAfternoon
	case hour >= 17 && hour < 21:
		return domain.TimeEvening
	default:
		return domain.TimeNight
	}
}
