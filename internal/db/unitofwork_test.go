package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/studypal/internal/db"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertSettings(ctx context.Context, tx db.DBTX, userID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO personality_settings (user_id, fierceness, style, updated_at) VALUES (?, 3, 4, '2026-03-01T00:00:00Z')`,
		userID)
	return err
}

func settingsExist(t *testing.T, database *sql.DB, userID string) bool {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM personality_settings WHERE user_id = ?`, userID).Scan(&n))
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSettings(ctx, tx, "u1")
	})
	require.NoError(t, err)
	assert.True(t, settingsExist(t, database, "u1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	errBoom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSettings(ctx, tx, "u2"); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.False(t, settingsExist(t, database, "u2"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSettings(ctx, tx, "u3")
			panic("boom")
		})
	})
	assert.False(t, settingsExist(t, database, "u3"))
}
