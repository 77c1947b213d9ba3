package domain

import (
	"errors"
	"time"
)

// Task is a single to-do item owned by a user. DueDate is a calendar date
// (YYYY-MM-DD) and DueTime a wall-clock time in either 12- or 24-hour form;
// both are kept as entered and interpreted at classification time.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     string
	DueTime     string
	Completed   bool
	CompletedAt *time.Time

	Difficulty Difficulty
	Category   string
	Source     TaskSource

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrAlreadyCompleted is returned when completing a task twice.
var ErrAlreadyCompleted = errors.New("task already completed")

// MarkDone flags the task as completed at now.
func (t *Task) MarkDone(now time.Time) error {
	if t.Completed {
		return ErrAlreadyCompleted
	}
	t.Completed = true
	t.CompletedAt = &now
	t.UpdatedAt = now
	return nil
}

// Reopen clears the completion flag.
func (t *Task) Reopen(now time.Time) {
	t.Completed = false
	t.CompletedAt = nil
	t.UpdatedAt = now
}

// CompletionTime returns when the task was completed, falling back to
// UpdatedAt for records written without a completion timestamp.
func (t *Task) CompletionTime() (time.Time, bool) {
	if !t.Completed {
		return time.Time{}, false
	}
	if t.CompletedAt != nil {
		return *t.CompletedAt, true
	}
	return t.UpdatedAt, true
}

// DisplayID returns the first 8 characters of the task ID.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
