package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLitePlanRunRepo implements PlanRunRepo over a SQLite database.
type SQLitePlanRunRepo struct {
	db db.Querier
}

// NewSQLitePlanRunRepo creates a new SQLitePlanRunRepo.
func NewSQLitePlanRunRepo(q db.Querier) *SQLitePlanRunRepo {
	return &SQLitePlanRunRepo{db: q}
}

func (r *SQLitePlanRunRepo) Save(ctx context.Context, run domain.PlanRun) error {
	budgetJSON, err := toJSON(run.Budget)
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	sequenceJSON, err := toJSON(run.Sequence)
	if err != nil {
		return fmt.Errorf("encoding sequence: %w", err)
	}
	costJSON, err := toJSON(run.CostTotals)
	if err != nil {
		return fmt.Errorf("encoding cost totals: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plan_runs (id, label, created_at, goal, budget_json, sequence_json, total_value, cost_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Label, run.CreatedAt.UTC().Format(time.RFC3339), run.Goal,
		budgetJSON, sequenceJSON, run.TotalValue, costJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting plan run %s: %w", run.ID, err)
	}
	return nil
}

func (r *SQLitePlanRunRepo) List(ctx context.Context, limit int) ([]domain.PlanRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, created_at, goal, budget_json, sequence_json, total_value, cost_json
		 FROM plan_runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plan runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.PlanRun
	for rows.Next() {
		run, err := scanPlanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan runs: %w", err)
	}
	return runs, nil
}

func (r *SQLitePlanRunRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plan_runs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting plan runs: %w", err)
	}
	return count, nil
}

func (r *SQLitePlanRunRepo) Get(ctx context.Context, id string) (domain.PlanRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, label, created_at, goal, budget_json, sequence_json, total_value, cost_json
		 FROM plan_runs WHERE id = ?`, id)

	run, err := scanPlanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.PlanRun{}, fmt.Errorf("plan run %s not found", id)
		}
		return domain.PlanRun{}, err
	}
	return run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlanRun(row rowScanner) (domain.PlanRun, error) {
	var run domain.PlanRun
	var createdAt, budgetJSON, sequenceJSON, costJSON string

	err := row.Scan(&run.ID, &run.Label, &createdAt, &run.Goal,
		&budgetJSON, &sequenceJSON, &run.TotalValue, &costJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.PlanRun{}, err
		}
		return domain.PlanRun{}, fmt.Errorf("scanning plan run row: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.PlanRun{}, fmt.Errorf("parsing plan run timestamp: %w", err)
	}

	if err := fromJSON(budgetJSON, &run.Budget); err != nil {
		return domain.PlanRun{}, fmt.Errorf("decoding budget: %w", err)
	}

	if err := fromJSON(sequenceJSON, &run.Sequence); err != nil {
		return domain.PlanRun{}, fmt.Errorf("decoding sequence: %w", err)
	}
	if err := fromJSON(costJSON, &run.CostTotals); err != nil {
		return domain.PlanRun{}, fmt.Errorf("decoding cost totals: %w", err)
	}
	return run, nil
}
