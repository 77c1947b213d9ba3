package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/urgency"
)

// ErrInvalidTask is wrapped by TaskService validation failures.
var ErrInvalidTask = errors.New("invalid task")

type taskService struct {
	tasks    repository.TaskRepo
	now      Clock
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, clock Clock, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "create-task", startedAt, err, map[string]any{"source": string(t.Source)})
	}()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Difficulty = domain.CoalesceDifficulty(t.Difficulty)
	t.Source = domain.CoalesceSource(t.Source)
	if err = validateTask(t); err != nil {
		return err
	}

	now := s.now().UTC().Truncate(time.Second)
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Completed && t.CompletedAt == nil {
		t.CompletedAt = &now
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.Difficulty = domain.CoalesceDifficulty(t.Difficulty)
	t.Source = domain.CoalesceSource(t.Source)
	if err := validateTask(t); err != nil {
		return err
	}
	t.UpdatedAt = s.now().UTC().Truncate(time.Second)
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) (t *domain.Task, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "complete-task", startedAt, err, map[string]any{"task_id": id})
	}()

	t, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = t.MarkDone(s.now().UTC().Truncate(time.Second)); err != nil {
		return nil, err
	}
	if err = s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Reopen(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Reopen(s.now().UTC().Truncate(time.Second))
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func validateTask(t *domain.Task) error {
	if strings.TrimSpace(t.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if _, _, err := urgency.DueAt(*t, time.UTC); err != nil {
		return fmt.Errorf("%w: due date %q must be YYYY-MM-DD", ErrInvalidTask, t.DueDate)
	}
	if _, _, ok := urgency.ParseClock(t.DueTime); !ok {
		return fmt.Errorf("%w: due time %q is not a valid clock time", ErrInvalidTask, t.DueTime)
	}
	if !domain.ValidDifficulties[string(t.Difficulty)] {
		return fmt.Errorf("%w: difficulty %q must be easy, medium or hard", ErrInvalidTask, t.Difficulty)
	}
	if !domain.ValidTaskSources[string(t.Source)] {
		return fmt.Errorf("%w: source %q must be manual, voice or assistant", ErrInvalidTask, t.Source)
	}
	return nil
}
