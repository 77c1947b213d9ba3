package responder

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
)

// assumedDailyTasks is the day-summary denominator used when the caller
// does not supply the real number of tasks.
const assumedDailyTasks = 10

// Clause tables are indexed by fierceness tier (see personality.Tier).

var overdueTaskClauses = [5]string{
	"It's a little past due, but that's okay!",
	"It's past due, so let's get to it soon.",
	"It is already overdue.",
	"It's OVERDUE. No more delays!",
	"IT IS OVERDUE. UNACCEPTABLE!",
}

var dueInClauses = [5]string{
	"It's due in %s, you've got this!",
	"It's due in %s.",
	"Due in %s. Plan your time.",
	"Due in %s. Get moving!",
	"%s LEFT. MOVE!",
}

var difficultyClauses = map[domain.Difficulty][5]string{
	domain.DifficultyEasy: {
		"This one is easy peasy!",
		"This should be a quick one.",
		"It's easy, so finish it fast.",
		"It's easy. Zero excuses for delay.",
		"EASY TASK. DONE IN MINUTES.",
	},
	domain.DifficultyHard: {
		"It's a tough one, so take it one small step at a time!",
		"This one is challenging, so break it into parts.",
		"It's hard, so start early.",
		"It's hard. That's no excuse.",
		"HARD? GOOD. NO EXCUSES.",
	},
}

var overdueCountClauses = [5]string{
	"You have %d overdue %s, but we'll catch up together!",
	"%d overdue %s still waiting.",
	"You have %d overdue %s.",
	"%d overdue %s. Fix that!",
	"%d OVERDUE %s. THIS ENDS TODAY!",
}

var completionRateClauses = [5]string{
	"You've completed %d%% of your tasks, amazing!",
	"You're at %d%% completion.",
	"Completion rate: %d%%.",
	"Only %d%% done. Push harder!",
	"%d%%? NOT ENOUGH!",
}

var daySummaryClauses = [5]string{
	"You finished %d of %d tasks today!",
	"Today: %d of %d tasks done.",
	"%d of %d tasks completed.",
	"%d of %d tasks. Tomorrow, more.",
	"%d OF %d. NOT GOOD ENOUGH.",
}

var stressSupportPhrases = [5]string{
	"Hey, it's okay to feel overwhelmed. Take a deep breath, I'm right here with you!",
	"Stress happens. Let's slow down and pick one thing to do.",
	"Feeling stressed? Pick the most urgent task and focus on that.",
	"Stress is a signal, not a stop sign. Make a plan and execute!",
	"PRESSURE MAKES DIAMONDS. Breathe, then attack the list!",
}

func timeClause(tc *domain.TaskContext, tier int) string {
	if tc.IsOverdue || tc.TimeUntilDueMinutes < 0 {
		return overdueTaskClauses[tier]
	}
	text := fmt.Sprintf(dueInClauses[tier], humanDuration(tc.TimeUntilDueMinutes))
	if tier == 4 {
		return strings.ToUpper(text)
	}
	return text
}

func difficultyClause(tc *domain.TaskContext, tier int) string {
	clauses, ok := difficultyClauses[tc.Difficulty]
	if !ok {
		return ""
	}
	return clauses[tier]
}

func overdueCountClause(tc *domain.TaskContext, tier int) string {
	if tc.OverdueTasksCount <= 0 {
		return ""
	}
	noun := "tasks"
	if tc.OverdueTasksCount == 1 {
		noun = "task"
	}
	if tier == 4 {
		noun = strings.ToUpper(noun)
	}
	return fmt.Sprintf(overdueCountClauses[tier], tc.OverdueTasksCount, noun)
}

func completionRateClause(tc *domain.TaskContext, tier int) string {
	return fmt.Sprintf(completionRateClauses[tier], percent(tc.CompletionRate))
}

func daySummaryClause(tc *domain.TaskContext, tier int) string {
	total := tc.TotalTasks
	if total <= 0 {
		total = assumedDailyTasks
	}
	done := int(math.Round(clampUnit(tc.CompletionRate) * float64(total)))
	return fmt.Sprintf(daySummaryClauses[tier], done, total)
}

func percent(rate float64) int {
	return int(math.Round(clampUnit(rate) * 100))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// humanDuration renders a positive number of minutes as minutes, hours or days.
func humanDuration(minutes float64) string {
	m := int(math.Round(minutes))
	switch {
	case m < 60:
		return plural(m, "minute")
	case m < 48*60:
		return plural(int(math.Round(float64(m)/60)), "hour")
	default:
		return plural(int(math.Round(float64(m)/(24*60))), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
