package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alexanderramin/studypal/internal/db"
	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/scorer"
)

const useCaseRecompute = "recompute-profile"

type profileService struct {
	tasks         repository.TaskRepo
	profiles      repository.StudentProfileRepo
	personalities PersonalityService
	uow           db.UnitOfWork
	logger        *slog.Logger
	now           Clock
	observer      UseCaseObserver

	inflight singleflight.Group
}

func NewProfileService(
	tasks repository.TaskRepo,
	profiles repository.StudentProfileRepo,
	personalities PersonalityService,
	uow db.UnitOfWork,
	logger *slog.Logger,
	clock Clock,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		tasks:         tasks,
		profiles:      profiles,
		personalities: personalities,
		uow:           uow,
		logger:        loggerOrDiscard(logger),
		now:           clockOrNow(clock),
		observer:      useCaseObserverOrNoop(observers),
	}
}

// Recompute rescores the user's tasks and upserts the profile. When the
// user has adaptive mode on, the mapped personality pair is written in the
// same transaction. Concurrent calls for one user share a single run.
// Storage failures are logged; the computed profile is still returned.
func (s *profileService) Recompute(ctx context.Context, userID string) *domain.StudentProfile {
	v, _, _ := s.inflight.Do(userID, func() (any, error) {
		return s.recompute(ctx, userID), nil
	})
	p := *v.(*domain.StudentProfile)
	return &p
}

func (s *profileService) recompute(ctx context.Context, userID string) *domain.StudentProfile {
	startedAt := time.Now()
	now := s.now()
	fields := map[string]any{"user_id": userID}
	var err error
	defer func() {
		observe(ctx, s.observer, useCaseRecompute, startedAt, err, fields)
	}()

	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "listing tasks failed, keeping stored profile", "user_id", userID, "error", err)
		return s.storedOrDefault(ctx, userID, now)
	}

	profile := scorer.Analyze(userID, taskValues(tasks), now)
	profile.LastUpdated = now.UTC().Truncate(time.Second)
	fields["task_count"] = len(tasks)
	fields["stress_level"] = int(profile.StressLevel)
	fields["motivation"] = profile.CurrentMotivationLevel

	settings := s.personalities.GetSettings(ctx, userID)
	if settings.Adaptive {
		settings.Level = scorer.MapToPersonality(profile, now)
		settings.UpdatedAt = profile.LastUpdated
		fields["adaptive_level"] = settings.Level
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteStudentProfileRepo(tx).Upsert(ctx, &profile); err != nil {
			return err
		}
		if settings.Adaptive {
			return repository.NewSQLitePersonalityRepo(tx).Upsert(ctx, &settings)
		}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "saving recomputed profile failed", "user_id", userID, "error", err)
		return &profile
	}
	if settings.Adaptive {
		s.personalities.Invalidate(userID)
	}
	return &profile
}

func (s *profileService) storedOrDefault(ctx context.Context, userID string, now time.Time) *domain.StudentProfile {
	stored, err := s.profiles.Get(ctx, userID)
	if err == nil {
		return stored
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.WarnContext(ctx, "reading stored profile failed", "user_id", userID, "error", err)
	}
	p := domain.DefaultStudentProfile(userID, now)
	return &p
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	return s.profiles.Get(ctx, userID)
}

func (s *profileService) AdaptivePersonality(profile domain.StudentProfile) domain.PersonalityLevel {
	return scorer.MapToPersonality(profile, s.now())
}
