package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/intelligence"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/responder"
	"github.com/alexanderramin/studypal/internal/urgency"
)

type assistantService struct {
	tasks         repository.TaskRepo
	personalities PersonalityService
	coach         *intelligence.CoachService
	classifier    *urgency.Classifier
	logger        *slog.Logger
	now           Clock
	observer      UseCaseObserver
}

func NewAssistantService(
	tasks repository.TaskRepo,
	personalities PersonalityService,
	coach *intelligence.CoachService,
	logger *slog.Logger,
	clock Clock,
	observers ...UseCaseObserver,
) AssistantService {
	logger = loggerOrDiscard(logger)
	if coach == nil {
		coach = intelligence.NewCoachService(nil, nil, logger)
	}
	return &assistantService{
		tasks:         tasks,
		personalities: personalities,
		coach:         coach,
		classifier:    urgency.New(logger),
		logger:        logger,
		now:           clockOrNow(clock),
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *assistantService) ClassifyTaskUrgency(task domain.Task, fierceness int) urgency.Result {
	return s.classifier.Classify(task, fierceness, s.now())
}

// BuildTaskContext summarises the user's tasks and, when taskID is set,
// describes that task. Stats are computed over every task the user owns.
func (s *assistantService) BuildTaskContext(ctx context.Context, userID, taskID string) (*domain.TaskContext, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("building task context: %w", err)
	}
	now := s.now()

	tc := &domain.TaskContext{TotalTasks: len(tasks)}
	var done int
	var target *domain.Task
	for _, t := range tasks {
		if t.Completed {
			done++
		} else if s.classifier.Classify(*t, 0, now).State == domain.UrgencyOverdue {
			tc.OverdueTasksCount++
		}
		if taskID != "" && t.ID == taskID {
			target = t
		}
	}
	if len(tasks) > 0 {
		tc.CompletionRate = float64(done) / float64(len(tasks))
	}

	if taskID == "" {
		return tc, nil
	}
	if target == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, repository.ErrNotFound)
	}
	tc.TaskName = target.Title
	tc.Difficulty = target.Difficulty
	tc.Category = target.Category
	if due, _, err := urgency.DueAt(*target, now.Location()); err == nil {
		tc.TimeUntilDueMinutes = due.Sub(now).Minutes()
		tc.IsOverdue = !target.Completed && tc.TimeUntilDueMinutes < 0
	}
	return tc, nil
}

// GenerateResponse replies in the user's current personality. A context is
// built whenever the response type needs one or a task is named.
func (s *assistantService) GenerateResponse(ctx context.Context, userID string, rt responder.ResponseType, taskID string) (reply intelligence.Reply, err error) {
	startedAt := time.Now()
	fields := map[string]any{"user_id": userID, "type": string(rt)}
	defer func() {
		fields["source"] = string(reply.Source)
		observe(ctx, s.observer, "generate-response", startedAt, err, fields)
	}()

	level := s.personalities.GetPair(ctx, userID)
	var tc *domain.TaskContext
	if rt.RequiresContext() || taskID != "" {
		tc, err = s.BuildTaskContext(ctx, userID, taskID)
		if err != nil {
			return intelligence.Reply{}, err
		}
	}
	return s.coach.Reply(ctx, rt, level, tc)
}

func (s *assistantService) GenerateNotificationMessage(fierceness int, taskName string, minutesUntilDue int) string {
	return responder.GenerateNotificationMessage(fierceness, taskName, minutesUntilDue)
}

// Notifications lists open tasks due within the window (overdue included),
// most severe first, each with a message in the user's fierceness.
func (s *assistantService) Notifications(ctx context.Context, userID string, within time.Duration) ([]Notification, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	now := s.now()
	fierceness := s.personalities.GetPair(ctx, userID).Fierceness

	var out []Notification
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		res := s.classifier.Classify(*t, fierceness, now)
		if !res.Parsed || res.MinutesUntilDue > within.Minutes() {
			continue
		}
		minutes := int(math.Floor(res.MinutesUntilDue))
		out = append(out, Notification{
			Task:    t,
			Urgency: res,
			Message: responder.GenerateNotificationMessage(fierceness, t.Title, minutes),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Urgency.State.Severity(), out[j].Urgency.State.Severity()
		if si != sj {
			return si > sj
		}
		return out[i].Urgency.DueAt.Before(out[j].Urgency.DueAt)
	})
	return out, nil
}
