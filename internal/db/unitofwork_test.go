package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// skillExists reads the skills table through a fresh transaction.
func skillExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
		row := tx.QueryRowContext(ctx, `SELECT 1 FROM skills WHERE id = ?`, id)
		var one int
		if err := row.Scan(&one); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO skills (id, name, value) VALUES (?, ?, ?)`, "S1", "Core Programming", 3)
		return err
	})
	require.NoError(t, err)

	assert.True(t, skillExists(uow, "S1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO skills (id, name, value) VALUES (?, ?, ?)`, "S2", "Data Modeling", 4)
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, skillExists(uow, "S2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO skills (id, name, value) VALUES (?, ?, ?)`, "S3", "Advanced Algorithms", 7)
			panic("boom")
		})
	})

	assert.False(t, skillExists(uow, "S3"), "row should not exist after panic rollback")
}

func TestWithinTx_SequentialTransactionsSeeEachOther(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO skills (id, name, value) VALUES (?, ?, ?)`, "S7", "Cloud Infrastructure", 5)
		return err
	})
	require.NoError(t, err)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.Querier) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
			return err
		}
		assert.Equal(t, 1, count)
		_, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, "S7")
		return err
	})
	require.NoError(t, err)

	assert.False(t, skillExists(uow, "S7"))
}
