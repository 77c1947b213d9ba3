package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
)

// DefaultPersonalityCacheSize keeps one user's settings in memory, so
// switching users evicts the previous entry.
const DefaultPersonalityCacheSize = 1

type personalityService struct {
	repo   repository.PersonalityRepo
	cache  *lru.Cache[string, domain.PersonalitySettings]
	logger *slog.Logger
	now    Clock
}

// NewPersonalityService creates a PersonalityService backed by repo with an
// LRU cache of cacheSize users (DefaultPersonalityCacheSize when <= 0).
func NewPersonalityService(repo repository.PersonalityRepo, cacheSize int, logger *slog.Logger, clock Clock) PersonalityService {
	if cacheSize <= 0 {
		cacheSize = DefaultPersonalityCacheSize
	}
	// lru.New only errors on a non-positive size.
	cache, _ := lru.New[string, domain.PersonalitySettings](cacheSize)
	return &personalityService{
		repo:   repo,
		cache:  cache,
		logger: loggerOrDiscard(logger),
		now:    clockOrNow(clock),
	}
}

func (s *personalityService) GetPair(ctx context.Context, userID string) domain.PersonalityLevel {
	return s.GetSettings(ctx, userID).Level
}

// GetSettings returns the cached or stored settings. A missing row yields
// the default pair and is cached; a store failure yields the default pair
// and is not cached, so the next call retries.
func (s *personalityService) GetSettings(ctx context.Context, userID string) domain.PersonalitySettings {
	if cached, ok := s.cache.Get(userID); ok {
		return cached
	}

	stored, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		settings := *stored
		settings.Level = settings.Level.Clamp()
		s.cache.Add(userID, settings)
		return settings
	case errors.Is(err, repository.ErrNotFound):
		settings := defaultSettings(userID)
		s.cache.Add(userID, settings)
		return settings
	default:
		s.logger.WarnContext(ctx, "reading personality failed, using defaults", "user_id", userID, "error", err)
		return defaultSettings(userID)
	}
}

// SetPair stores a clamped pair. The in-memory value is updated even when
// the write fails, so the rest of the session keeps the user's choice.
func (s *personalityService) SetPair(ctx context.Context, userID string, level domain.PersonalityLevel) bool {
	settings := s.GetSettings(ctx, userID)
	settings.Level = level.Clamp()
	return s.store(ctx, settings)
}

func (s *personalityService) SetAdaptive(ctx context.Context, userID string, adaptive bool) bool {
	settings := s.GetSettings(ctx, userID)
	settings.Adaptive = adaptive
	return s.store(ctx, settings)
}

func (s *personalityService) Invalidate(userID string) {
	s.cache.Remove(userID)
}

func (s *personalityService) store(ctx context.Context, settings domain.PersonalitySettings) bool {
	settings.UpdatedAt = s.now().UTC().Truncate(time.Second)
	s.cache.Add(settings.UserID, settings)
	if err := s.repo.Upsert(ctx, &settings); err != nil {
		s.logger.WarnContext(ctx, "saving personality failed", "user_id", settings.UserID, "error", err)
		return false
	}
	return true
}

func defaultSettings(userID string) domain.PersonalitySettings {
	return domain.PersonalitySettings{UserID: userID, Level: domain.DefaultPersonality}
}
