package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"tasks", "personality_settings", "student_profiles"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_tasks_user", "idx_tasks_user_due"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SourceColumnDefaultsToManual(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, user_id, title, due_date, created_at, updated_at)
		VALUES ('t1', 'u1', 'Essay', '2026-03-10', '2026-03-01T00:00:00Z', '2026-03-01T00:00:00Z')`)
	require.NoError(t, err)

	var source, difficulty string
	require.NoError(t, db.QueryRow(`SELECT source, difficulty FROM tasks WHERE id = 't1'`).Scan(&source, &difficulty))
	assert.Equal(t, "manual", source)
	assert.Equal(t, "medium", difficulty)
}

func TestMigrate_RejectsUnknownDifficulty(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, user_id, title, due_date, difficulty, created_at, updated_at)
		VALUES ('t1', 'u1', 'Essay', '2026-03-10', 'brutal', '2026-03-01T00:00:00Z', '2026-03-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestOpenDB_FileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "studypal.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_PragmasApplyToEveryConnection(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "studypal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	first, err := db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var busy, fk int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busy))
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
		assert.Equal(t, busyTimeoutMs, busy, "conn %d busy_timeout", i)
		assert.Equal(t, 1, fk, "conn %d foreign_keys", i)
	}
}

func TestOpenDB_ConcurrentWriteTransactions(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "studypal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	uow := NewSQLiteUnitOfWork(db)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			errs <- uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
				var n int
				if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM personality_settings`).Scan(&n); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, `INSERT INTO personality_settings (user_id, fierceness, style, adaptive, updated_at)
					VALUES (?, 0, 0, 0, '2026-03-01T00:00:00Z')`, fmt.Sprintf("u%d", w))
				return err
			})
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM personality_settings`).Scan(&n))
	assert.Equal(t, writers, n)
}
