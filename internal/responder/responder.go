package responder

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/personality"
)

// defaultTaskName stands in for {task} when the context carries no name.
const defaultTaskName = "your task"

// Responder assembles personality-driven messages from the phrase banks,
// the tiered clause tables and the style transform.
type Responder struct {
	selector *personality.Selector
	now      func() time.Time
}

// New creates a Responder. A nil selector gets a time-seeded one and a nil
// clock uses time.Now.
func New(selector *personality.Selector, now func() time.Time) *Responder {
	if selector == nil {
		selector = personality.NewSelector(nil)
	}
	if now == nil {
		now = time.Now
	}
	return &Responder{selector: selector, now: now}
}

var baseCategory = map[ResponseType]personality.PhraseCategory{
	ResponseGreeting:            personality.CategoryGreetings,
	ResponseTaskReminder:        personality.CategoryTaskReminders,
	ResponseTaskCompletion:      personality.CategoryTaskCompletionResponses,
	ResponseMotivation:          personality.CategoryMotivationalQuotes,
	ResponseCorrection:          personality.CategoryCorrections,
	ResponseDaySummary:          personality.CategoryEndOfDayMessages,
	ResponseProcrastinationHelp: personality.CategoryProcrastination,
}

// Generate builds a message of the given type at the given personality level.
// Every type except GREETING requires tc; a nil context returns ErrMissingContext.
func (r *Responder) Generate(rt ResponseType, level domain.PersonalityLevel, tc *domain.TaskContext) (string, error) {
	if _, ok := baseCategory[rt]; !ok && rt != ResponseStressSupport {
		return "", fmt.Errorf("%w: %q", ErrUnknownResponseType, string(rt))
	}
	if rt.RequiresContext() && tc == nil {
		return "", fmt.Errorf("generate %s: %w", rt, ErrMissingContext)
	}

	level = level.Clamp()
	f := level.Fierceness
	tier := personality.Tier(f)

	var parts []string
	switch rt {
	case ResponseGreeting:
		parts = []string{salutation(r.now()), r.phrase(f, rt, tc)}
	case ResponseTaskReminder:
		parts = []string{r.phrase(f, rt, tc), timeClause(tc, tier), difficultyClause(tc, tier)}
	case ResponseTaskCompletion:
		parts = []string{r.phrase(f, rt, tc), completionRateClause(tc, tier)}
	case ResponseMotivation:
		parts = []string{r.phrase(f, rt, tc), completionRateClause(tc, tier)}
	case ResponseCorrection:
		parts = []string{r.phrase(f, rt, tc), overdueCountClause(tc, tier)}
	case ResponseDaySummary:
		parts = []string{r.phrase(f, rt, tc), daySummaryClause(tc, tier), overdueCountClause(tc, tier)}
	case ResponseProcrastinationHelp:
		parts = []string{r.phrase(f, rt, tc), difficultyClause(tc, tier)}
	case ResponseStressSupport:
		parts = []string{stressSupportPhrases[tier], overdueCountClause(tc, tier)}
	}

	return personality.Transform(join(parts), level), nil
}

func (r *Responder) phrase(f int, rt ResponseType, tc *domain.TaskContext) string {
	text := r.selector.Pick(f, baseCategory[rt])
	return strings.ReplaceAll(text, personality.TaskPlaceholder, taskName(tc))
}

func taskName(tc *domain.TaskContext) string {
	if tc == nil || strings.TrimSpace(tc.TaskName) == "" {
		return defaultTaskName
	}
	return tc.TaskName
}

func salutation(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning!"
	case h < 17:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}

func join(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
