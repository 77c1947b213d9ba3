package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studypal/internal/domain"
)

const dateLayout = "2006-01-02"

type TaskOption func(*domain.Task)

// WithDue sets the due date from at (in at's location) and, when clock is
// non-empty, the due time string.
func WithDue(at time.Time, clock string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = at.Format(dateLayout)
		t.DueTime = clock
	}
}

// WithDueAt sets both due fields from at, using 24-hour HH:MM.
func WithDueAt(at time.Time) TaskOption {
	return WithDue(at, at.Format("15:04"))
}

func WithDueDate(date string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = date
	}
}

func WithDifficulty(d domain.Difficulty) TaskOption {
	return func(t *domain.Task) {
		t.Difficulty = d
	}
}

func WithSource(s domain.TaskSource) TaskOption {
	return func(t *domain.Task) {
		t.Source = s
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

// CompletedAt marks the task done at the given instant.
func CompletedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
		t.CompletedAt = &at
		t.UpdatedAt = at
	}
}

// NewTestTask builds a medium, manually entered task due at noon tomorrow.
// Timestamps are truncated to seconds so they survive a storage round trip.
func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	due := now.AddDate(0, 0, 1)
	t := &domain.Task{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      title,
		DueDate:    due.Format(dateLayout),
		DueTime:    "12:00",
		Difficulty: domain.DifficultyMedium,
		Source:     domain.SourceManual,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestProfile returns the default profile for userID with the given
// stress level and motivation.
func NewTestProfile(userID string, stress domain.StressLevel, motivation int, now time.Time) *domain.StudentProfile {
	p := domain.DefaultStudentProfile(userID, now.UTC().Truncate(time.Second))
	p.StressLevel = stress
	p.CurrentMotivationLevel = motivation
	return &p
}
