package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/repository"
	"github.com/alexanderramin/studypal/internal/scorer"
	"github.com/alexanderramin/studypal/internal/testutil"
)

type profileFixture struct {
	tasks         *repository.SQLiteTaskRepo
	profiles      *repository.SQLiteStudentProfileRepo
	personalities PersonalityService
	svc           ProfileService
}

func newProfileFixture(t *testing.T, observers ...UseCaseObserver) profileFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := profileFixture{
		tasks:         repository.NewSQLiteTaskRepo(database),
		profiles:      repository.NewSQLiteStudentProfileRepo(database),
		personalities: NewPersonalityService(repository.NewSQLitePersonalityRepo(database), 0, nil, testClock),
	}
	f.svc = NewProfileService(f.tasks, f.profiles, f.personalities, testutil.NewTestUoW(database), nil, testClock, observers...)
	return f
}

func seedOverdue(t *testing.T, repo repository.TaskRepo, userID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		task := testutil.NewTestTask(userID, "overdue", testutil.WithDueAt(testNow.Add(-time.Duration(i+1)*time.Hour)),
			testutil.WithCreatedAt(testNow.Add(-48*time.Hour)))
		require.NoError(t, repo.Create(context.Background(), task))
	}
}

func TestProfileService_RecomputeStoresProfile(t *testing.T) {
	obs := &recordingObserver{}
	f := newProfileFixture(t, obs)
	ctx := context.Background()
	seedOverdue(t, f.tasks, "u1", 3)

	got := f.svc.Recompute(ctx, "u1")

	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, testNow.Equal(got.LastUpdated))

	stored, err := f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, got.StressLevel, stored.StressLevel)
	assert.Equal(t, got.CurrentMotivationLevel, stored.CurrentMotivationLevel)

	require.Len(t, obs.events, 1)
	assert.Equal(t, useCaseRecompute, obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, int(got.StressLevel), obs.events[0].Fields["stress_level"])
}

func TestProfileService_RecomputeIsIdempotent(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	seedOverdue(t, f.tasks, "u1", 2)

	first := f.svc.Recompute(ctx, "u1")
	second := f.svc.Recompute(ctx, "u1")

	assert.Equal(t, first, second)
}

func TestProfileService_AdaptiveModeWritesMappedPair(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	seedOverdue(t, f.tasks, "u1", 4)
	require.True(t, f.personalities.SetAdaptive(ctx, "u1", true))

	profile := f.svc.Recompute(ctx, "u1")

	want := scorer.MapToPersonality(*profile, testNow)
	assert.Equal(t, want, f.personalities.GetPair(ctx, "u1"))
	assert.Equal(t, want, f.svc.AdaptivePersonality(*profile))
}

func TestProfileService_NonAdaptiveLeavesPairAlone(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	seedOverdue(t, f.tasks, "u1", 4)
	require.True(t, f.personalities.SetPair(ctx, "u1", domain.PersonalityLevel{Fierceness: 1, Style: 8}))

	f.svc.Recompute(ctx, "u1")

	assert.Equal(t, domain.PersonalityLevel{Fierceness: 1, Style: 8}, f.personalities.GetPair(ctx, "u1"))
}

func TestProfileService_ListFailureReturnsStoredWithoutWriting(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	personalities := NewPersonalityService(repository.NewSQLitePersonalityRepo(database), 0, nil, testClock)
	ctx := context.Background()

	earlier := testNow.Add(-24 * time.Hour)
	require.NoError(t, profiles.Upsert(ctx, testutil.NewTestProfile("u1", domain.StressHigh, 3, earlier)))

	svc := NewProfileService(failingTaskRepo{err: errBoom}, profiles, personalities, testutil.NewTestUoW(database), nil, testClock)
	got := svc.Recompute(ctx, "u1")

	assert.Equal(t, domain.StressHigh, got.StressLevel)
	assert.Equal(t, 3, got.CurrentMotivationLevel)
	stored, err := profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, earlier.Equal(stored.LastUpdated), "stored profile untouched")
}

func TestProfileService_ListFailureWithoutStoredProfileReturnsDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	personalities := NewPersonalityService(repository.NewSQLitePersonalityRepo(database), 0, nil, testClock)

	svc := NewProfileService(failingTaskRepo{err: errBoom}, profiles, personalities, testutil.NewTestUoW(database), nil, testClock)
	got := svc.Recompute(context.Background(), "u1")

	assert.Equal(t, domain.DefaultStudentProfile("u1", testNow), *got)
	_, err := profiles.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_FailedPersonalityWriteRollsBackProfile(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	profiles := repository.NewSQLiteStudentProfileRepo(database)
	personalities := NewPersonalityService(repository.NewSQLitePersonalityRepo(database), 0, nil, testClock)
	ctx := context.Background()
	seedOverdue(t, tasks, "u1", 4)
	require.True(t, personalities.SetPair(ctx, "u1", domain.PersonalityLevel{Fierceness: 2, Style: 2}))
	require.True(t, personalities.SetAdaptive(ctx, "u1", true))

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errBoom}
	svc := NewProfileService(tasks, profiles, personalities, uow, nil, testClock)

	got := svc.Recompute(ctx, "u1")

	require.NotNil(t, got, "computed profile is still returned")
	_, err := profiles.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	personalities.Invalidate("u1")
	assert.Equal(t, domain.PersonalityLevel{Fierceness: 2, Style: 2}, personalities.GetPair(ctx, "u1"))
}

type blockingTaskRepo struct {
	repository.TaskRepo
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (r *blockingTaskRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	if r.calls.Add(1) == 1 {
		close(r.entered)
	}
	<-r.release
	return r.TaskRepo.ListByUser(ctx, userID)
}

func TestProfileService_ConcurrentRecomputesCoalesce(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := &blockingTaskRepo{
		TaskRepo: repository.NewSQLiteTaskRepo(database),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	seedOverdue(t, tasks.TaskRepo, "u1", 2)
	personalities := NewPersonalityService(repository.NewSQLitePersonalityRepo(database), 0, nil, testClock)
	svc := NewProfileService(tasks, repository.NewSQLiteStudentProfileRepo(database), personalities, testutil.NewTestUoW(database), nil, testClock)

	const callers = 5
	results := make([]*domain.StudentProfile, callers)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = svc.Recompute(context.Background(), "u1")
	}()
	<-tasks.entered
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Recompute(context.Background(), "u1")
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(tasks.release)
	wg.Wait()

	assert.Equal(t, int32(1), tasks.calls.Load())
	for i := 1; i < callers; i++ {
		assert.Equal(t, results[0], results[i])
		assert.NotSame(t, results[0], results[i], "each caller gets its own copy")
	}
}
