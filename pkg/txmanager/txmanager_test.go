package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	m := New(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		executor := GetExecutor(ctx, db)
		_, err := executor.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	m := New(db)
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		executor := GetExecutor(ctx, db)
		if _, err := executor.ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, db), "вставка откатилась вместе с транзакцией")
}

func TestTransactionManager_NestedReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	m := New(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(innerCtx context.Context) error {
			executor := GetExecutor(innerCtx, db)
			_, err := executor.ExecContext(innerCtx, `INSERT INTO items (name) VALUES (?)`, "nested")
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestGetExecutor_FallsBackToDB(t *testing.T) {
	db := newTestDB(t)

	executor := GetExecutor(context.Background(), db)
	assert.Equal(t, DBExecutor(db), executor)
}
