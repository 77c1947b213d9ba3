package urgency

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
)

const (
	criticalHours = 2.0
	urgentHours   = 12.0
)

// Result is the outcome of classifying one task.
type Result struct {
	State           domain.UrgencyState
	Color           domain.UrgencyColor
	DueAt           time.Time
	MinutesUntilDue float64
	Multiplier      float64
	AdjustedHours   float64
	// Parsed is false when the due date could not be read and the state
	// fell back to upcoming.
	Parsed bool
}

// ColorFor returns the display color of an urgency state.
func ColorFor(state domain.UrgencyState) domain.UrgencyColor {
	switch state {
	case domain.UrgencyOverdue, domain.UrgencyCritical:
		return domain.ColorRed
	case domain.UrgencyUrgent:
		return domain.ColorOrange
	case domain.UrgencyUpcoming:
		return domain.ColorGreen
	default:
		return domain.ColorGray
	}
}

// Multiplier compresses the comfortable time window as fierceness rises:
// 1.0 at fierceness 0 up to 5.0 at fierceness 9.
func Multiplier(fierceness int) float64 {
	return 1 + (float64(domain.ClampLevel(fierceness))/9)*4
}

// Classifier assigns urgency states to tasks.
type Classifier struct {
	logger *slog.Logger
}

// New creates a Classifier. A nil logger discards warnings.
func New(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Classifier{logger: logger}
}

// Classify computes the urgency of task at now. Completed wins over any time
// logic and overdue is never softened by the fierceness multiplier.
func (c *Classifier) Classify(task domain.Task, fierceness int, now time.Time) Result {
	if task.Completed {
		return Result{State: domain.UrgencyCompleted, Color: ColorFor(domain.UrgencyCompleted), Parsed: true}
	}

	due, clockOK, err := DueAt(task, now.Location())
	if err != nil {
		c.logger.Warn("unparseable due date, treating as upcoming",
			"task_id", task.ID, "due_date", task.DueDate, "error", err)
		return Result{State: domain.UrgencyUpcoming, Color: ColorFor(domain.UrgencyUpcoming)}
	}
	if !clockOK {
		c.logger.Warn("unparseable due time, defaulted components to zero",
			"task_id", task.ID, "due_time", task.DueTime)
	}

	diffMinutes := due.Sub(now).Minutes()
	res := Result{DueAt: due, MinutesUntilDue: diffMinutes, Parsed: true}
	if diffMinutes < 0 {
		res.State = domain.UrgencyOverdue
		res.Color = ColorFor(res.State)
		return res
	}

	res.Multiplier = Multiplier(fierceness)
	res.AdjustedHours = (diffMinutes / 60) / res.Multiplier
	switch {
	case res.AdjustedHours <= criticalHours:
		res.State = domain.UrgencyCritical
	case res.AdjustedHours <= urgentHours:
		res.State = domain.UrgencyUrgent
	default:
		res.State = domain.UrgencyUpcoming
	}
	res.Color = ColorFor(res.State)
	return res
}

// Classify classifies with a classifier logging to slog.Default.
func Classify(task domain.Task, fierceness int, now time.Time) Result {
	return New(slog.Default()).Classify(task, fierceness, now)
}
