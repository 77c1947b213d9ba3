package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/testutil"
)

func TestPersonalityService_DefaultsWhenMissing(t *testing.T) {
	svc := NewPersonalityService(repository.NewSQLitePersonalityRepo(testutil.NewTestDB(t)), 0, nil, testClock)

	assert.Equal(t, domain.PersonalityLevel{}, svc.GetPair(context.Background(), "u1"))
	assert.False(t, svc.GetSettings(context.Background(), "u1").Adaptive)
}

func TestPersonalityService_SetPairPersistsClamped(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLitePersonalityRepo(database)
	svc := NewPersonalityService(repo, 0, nil, testClock)
	ctx := context.Background()

	ok := svc.SetPair(ctx, "u1", domain.PersonalityLevel{Fierceness: 12, Style: -2})
	require.True(t, ok)
	assert.Equal(t, domain.PersonalityLevel{Fierceness: 9, Style: 0}, svc.GetPair(ctx, "u1"))

	stored, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.PersonalityLevel{Fierceness: 9, Style: 0}, stored.Level)
	assert.True(t, testNow.Equal(stored.UpdatedAt))
}

func TestPersonalityService_SetAdaptiveKeepsPair(t *testing.T) {
	svc := NewPersonalityService(repository.NewSQLitePersonalityRepo(testutil.NewTestDB(t)), 0, nil, testClock)
	ctx := context.Background()

	require.True(t, svc.SetPair(ctx, "u1", domain.PersonalityLevel{Fierceness: 4, Style: 6}))
	require.True(t, svc.SetAdaptive(ctx, "u1", true))

	got := svc.GetSettings(ctx, "u1")
	assert.True(t, got.Adaptive)
	assert.Equal(t, domain.PersonalityLevel{Fierceness: 4, Style: 6}, got.Level)
}

func TestPersonalityService_StoreFailureFallsBackToDefault(t *testing.T) {
	repo := &failingPersonalityRepo{getErr: errBoom, upsertErr: errBoom}
	svc := NewPersonalityService(repo, 0, nil, testClock)
	ctx := context.Background()

	assert.Equal(t, domain.PersonalityLevel{}, svc.GetPair(ctx, "u1"))
	assert.Equal(t, domain.PersonalityLevel{}, svc.GetPair(ctx, "u1"))
	assert.Equal(t, 2, repo.gets, "read failures are not cached")
}

func TestPersonalityService_FailedWriteStillUpdatesSession(t *testing.T) {
	repo := &failingPersonalityRepo{getErr: repository.ErrNotFound, upsertErr: errBoom}
	svc := NewPersonalityService(repo, 0, nil, testClock)
	ctx := context.Background()

	ok := svc.SetPair(ctx, "u1", domain.PersonalityLevel{Fierceness: 7, Style: 3})

	assert.False(t, ok)
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, domain.PersonalityLevel{Fierceness: 7, Style: 3}, svc.GetPair(ctx, "u1"))
}

func TestPersonalityService_UserChangeEvictsCachedPair(t *testing.T) {
	repo := repository.NewSQLitePersonalityRepo(testutil.NewTestDB(t))
	svc := NewPersonalityService(repo, 1, nil, testClock)
	ctx := context.Background()

	require.True(t, svc.SetPair(ctx, "alice", domain.PersonalityLevel{Fierceness: 2, Style: 2}))

	// Written behind the cache's back.
	require.NoError(t, repo.Upsert(ctx, &domain.PersonalitySettings{
		UserID: "alice", Level: domain.PersonalityLevel{Fierceness: 8, Style: 1}, UpdatedAt: testNow,
	}))
	assert.Equal(t, 2, svc.GetPair(ctx, "alice").Fierceness, "served from cache")

	svc.GetPair(ctx, "bob")
	assert.Equal(t, 8, svc.GetPair(ctx, "alice").Fierceness, "alice was evicted by bob")
}

func TestPersonalityService_Invalidate(t *testing.T) {
	repo := repository.NewSQLitePersonalityRepo(testutil.NewTestDB(t))
	svc := NewPersonalityService(repo, 4, nil, testClock)
	ctx := context.Background()

	assert.Equal(t, 0, svc.GetPair(ctx, "u1").Fierceness)
	require.NoError(t, repo.Upsert(ctx, &domain.PersonalitySettings{
		UserID: "u1", Level: domain.PersonalityLevel{Fierceness: 5, Style: 5}, UpdatedAt: testNow,
	}))
	assert.Equal(t, 0, svc.GetPair(ctx, "u1").Fierceness)

	svc.Invalidate("u1")
	assert.Equal(t, 5, svc.GetPair(ctx, "u1").Fierceness)
}
