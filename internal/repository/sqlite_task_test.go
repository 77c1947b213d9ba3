package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studypal/internal/domain"
	"github.com/alexanderramin/studypal/internal/testutil"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("u1", "Read chapter 4",
		testutil.WithDescription("pages 80-112"),
		testutil.WithDifficulty(domain.DifficultyHard),
		testutil.WithSource(domain.SourceVoice),
		testutil.WithCategory("biology"),
		testutil.WithDue(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "3:30 PM"),
	)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskRepo_CreateDefaultsEmptyEnums(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("u1", "Quiz prep")
	task.Difficulty = ""
	task.Source = ""
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyMedium, got.Difficulty)
	assert.Equal(t, domain.SourceManual, got.Source)
}

func TestTaskRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListByUser_FiltersAndOrders(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	later := testutil.NewTestTask("u1", "Later", testutil.WithDueDate("2026-05-01"))
	sooner := testutil.NewTestTask("u1", "Sooner", testutil.WithDueDate("2026-04-01"))
	other := testutil.NewTestTask("u2", "Not mine")
	for _, task := range []*domain.Task{later, sooner, other} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Sooner", tasks[0].Title)
	assert.Equal(t, "Later", tasks[1].Title)

	none, err := repo.ListByUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskRepo_UpdateCompletion(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("u1", "Essay")
	require.NoError(t, repo.Create(ctx, task))

	doneAt := task.CreatedAt.Add(2 * time.Hour)
	require.NoError(t, task.MarkDone(doneAt))
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, doneAt.Equal(*got.CompletedAt))

	got.Reopen(doneAt.Add(time.Minute))
	require.NoError(t, repo.Update(ctx, got))
	reopened, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestTaskRepo_UpdateAndDeleteMissing(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	ghost := testutil.NewTestTask("u1", "Ghost")
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ghost.ID), ErrNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("u1", "Essay")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
