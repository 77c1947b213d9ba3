package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/personality"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// NotificationRow is one pending reminder.
type NotificationRow struct {
	Task    *domain.Task
	Urgency urgency.Result
	Message string
}

func FormatNotifications(rows []NotificationRow) string {
	var b strings.Builder
	for _, n := range rows {
		badge := UrgencyIndicator(n.Urgency.State, n.Urgency.Color)
		fmt.Fprintf(&b, "%s %s %s\n", badge, Dim(n.Task.DisplayID()), n.Message)
	}
	return b.String()
}

// FormatPersonality renders the active dials with their trait and style names.
func FormatPersonality(s domain.PersonalitySettings) string {
	traits := personality.Traits(s.Level.Fierceness)
	mode := "manual"
	if s.Adaptive {
		mode = "adaptive"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/9  %s\n", Bold("Fierceness"), s.Level.Fierceness, StylePurple.Render(traits.Name))
	fmt.Fprintf(&b, "%s      %d/9  %s\n", Bold("Style"), s.Level.Style, StyleBlue.Render(personality.StyleName(s.Level.Style)))
	fmt.Fprintf(&b, "%s       %s\n", Bold("Mode"), mode)
	return b.String()
}

// FormatTraits renders a trait profile as a labelled list.
func FormatTraits(level int, t personality.TraitProfile) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Level %d: %s", level, t.Name)) + "\n")
	rows := [][2]string{
		{"Communication", t.CommunicationStyle},
		{"Motivation", t.MotivationApproach},
		{"On failure", t.ResponseToFailure},
		{"On success", t.ResponseToSuccess},
		{"Tasks", t.TaskManagementStyle},
		{"Tone", t.EmotionalTone},
		{"Vocabulary", t.VocabularyStyle},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-14s", r[0])), r[1])
	}
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-14s", "Encouragement")), ScoreBar(t.EncouragementLevel, 10, 10))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-14s", "Strictness")), ScoreBar(t.StrictnessLevel, 10, 10))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-14s", "Nurturing")), ScoreBar(t.NurturingLevel, 10, 10))
	return b.String()
}

func stressStyle(s domain.StressLevel) string {
	switch s {
	case domain.StressCritical, domain.StressHigh:
		return StyleRed.Render(s.String())
	case domain.StressModerate:
		return StyleYellow.Render(s.String())
	default:
		return StyleGreen.Render(s.String())
	}
}

// FormatProfile renders a student profile and, when given, the pair
// adaptive mode would pick for it.
func FormatProfile(p domain.StudentProfile, suggested *domain.PersonalityLevel) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-16s", label)), value)
	}
	lp := p.LearningPattern
	line("Stress", stressStyle(p.StressLevel))
	line("Motivation", fmt.Sprintf("%s %d/10", ScoreBar(p.CurrentMotivationLevel, 10, 10), p.CurrentMotivationLevel))
	line("Learning style", string(p.LearningStyle))
	line("Best time", string(lp.PreferredTimeOfDay))
	line("Completion", formatPercent(lp.CompletionRate))
	line("Procrastination", formatPercent(lp.ProcrastinationTendency))
	line("Avg duration", fmt.Sprintf("%.0f min", lp.AverageTaskDuration))
	if len(lp.LastActiveHours) > 0 {
		hours := make([]string, len(lp.LastActiveHours))
		for i, h := range lp.LastActiveHours {
			hours[i] = fmt.Sprintf("%02d", h)
		}
		line("Active hours", strings.Join(hours, " "))
	}
	if suggested != nil {
		line("Adaptive pair", fmt.Sprintf("fierceness %d, style %d (%s)",
			suggested.Fierceness, suggested.Style, personality.StyleName(suggested.Style)))
	}
	line("Updated", formatTimestamp(p.LastUpdated))
	return RenderBox("Student profile", strings.TrimRight(b.String(), "\n"))
}
