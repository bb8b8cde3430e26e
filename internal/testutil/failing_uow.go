package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/skillpath/internal/db"
)

// FailingUoW is a UnitOfWork that opens real transactions but injects Err
// into one exec chosen by its SQL text: the first statement containing Match
// fails, after letting Skip earlier matches through. Writes issued before
// the failure land inside the transaction, so rollback tests observe a
// half-written store being undone.
type FailingUoW struct {
	DB    *sql.DB
	Match string
	Skip  int
	Err   error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.Querier) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &matchFailExec{Querier: tx, match: u.Match, skip: int32(u.Skip), err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type matchFailExec struct {
	db.Querier
	match string
	skip  int32
	seen  atomic.Int32
	err   error
}

func (f *matchFailExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) && f.seen.Add(1) > f.skip {
		return nil, f.err
	}
	return f.Querier.ExecContext(ctx, query, args...)
}
