package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/importer"
	"github.com/alexanderramin/studypal/internal/intelligence"
	"github.com/alexanderramin/studypal/internal/responder"
	"github.com/alexanderramin/studypal/internal/urgency"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) (*domain.Task, error)
	Reopen(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// PersonalityService reads and writes the per-user (fierceness, style) pair.
// Reads never fail: a missing or unreadable pair yields the default.
type PersonalityService interface {
	GetPair(ctx context.Context, userID string) domain.PersonalityLevel
	GetSettings(ctx context.Context, userID string) domain.PersonalitySettings
	SetPair(ctx context.Context, userID string, level domain.PersonalityLevel) bool
	SetAdaptive(ctx context.Context, userID string, adaptive bool) bool
	Invalidate(userID string)
}

type ProfileService interface {
	Recompute(ctx context.Context, userID string) *domain.StudentProfile
	Get(ctx context.Context, userID string) (*domain.StudentProfile, error)
	AdaptivePersonality(profile domain.StudentProfile) domain.PersonalityLevel
}

// Notification is one pending push message for an open task.
type Notification struct {
	Task    *domain.Task
	Urgency urgency.Result
	Message string
}

type AssistantService interface {
	ClassifyTaskUrgency(task domain.Task, fierceness int) urgency.Result
	BuildTaskContext(ctx context.Context, userID, taskID string) (*domain.TaskContext, error)
	GenerateResponse(ctx context.Context, userID string, rt responder.ResponseType, taskID string) (intelligence.Reply, error)
	GenerateNotificationMessage(fierceness int, taskName string, minutesUntilDue int) string
	Notifications(ctx context.Context, userID string, within time.Duration) ([]Notification, error)
}

// ImportService loads tasks in bulk. An import is all or nothing.
type ImportService interface {
	ImportTasks(ctx context.Context, userID string, schema *importer.ImportSchema) ([]*domain.Task, error)
}
