package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteSkillRepo implements SkillRepo over a SQLite database. It accepts
// a db.Querier so the same implementation serves both direct access and
// transaction-scoped use inside a UnitOfWork.
type SQLiteSkillRepo struct {
	db db.Querier
}

// NewSQLiteSkillRepo creates a new SQLiteSkillRepo.
func NewSQLiteSkillRepo(q db.Querier) *SQLiteSkillRepo {
	return &SQLiteSkillRepo{db: q}
}

func (r *SQLiteSkillRepo) ReplaceAll(ctx context.Context, skills []domain.Skill) error {
	// Wholesale replacement: clear the catalog, then insert in order.
	// Costs and prereq edges cascade on delete.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		return fmt.Errorf("clearing skills: %w", err)
	}

	for pos, s := range skills {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO skills (id, name, value, demand, critical, position) VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Value, s.Demand, boolToInt(s.Critical), pos,
		)
		if err != nil {
			return fmt.Errorf("inserting skill %s: %w", s.ID, err)
		}

		for _, dim := range sortedDimensions(s.Costs) {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO skill_costs (skill_id, dimension, amount) VALUES (?, ?, ?)`,
				s.ID, dim, s.Costs[dim],
			)
			if err != nil {
				return fmt.Errorf("inserting cost %s/%s: %w", s.ID, dim, err)
			}
		}
	}

	// Prereq edges go in after every skill row exists so foreign keys hold
	// regardless of catalog order.
	for _, s := range skills {
		for _, prereq := range s.Prereqs {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO skill_prereqs (skill_id, prereq_id) VALUES (?, ?)`,
				s.ID, prereq,
			)
			if err != nil {
				return fmt.Errorf("inserting prereq %s -> %s: %w", s.ID, prereq, err)
			}
		}
	}

	return nil
}

func (r *SQLiteSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, value, demand, critical FROM skills ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skills: %w", err)
	}

	costs, err := r.loadAllCosts(ctx)
	if err != nil {
		return nil, err
	}
	prereqs, err := r.loadAllPrereqs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range skills {
		skills[i].Costs = costs[skills[i].ID]
		skills[i].Prereqs = prereqs[skills[i].ID]
	}
	return skills, nil
}

func (r *SQLiteSkillRepo) Get(ctx context.Context, id string) (domain.Skill, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, value, demand, critical FROM skills WHERE id = ?`, id)

	var s domain.Skill
	var critical int
	err := row.Scan(&s.ID, &s.Name, &s.Value, &s.Demand, &critical)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Skill{}, fmt.Errorf("skill %s not found", id)
		}
		return domain.Skill{}, fmt.Errorf("scanning skill: %w", err)
	}
	s.Critical = intToBool(critical)

	costRows, err := r.db.QueryContext(ctx,
		`SELECT dimension, amount FROM skill_costs WHERE skill_id = ? ORDER BY dimension`, id)
	if err != nil {
		return domain.Skill{}, fmt.Errorf("loading costs for %s: %w", id, err)
	}
	defer costRows.Close()
	for costRows.Next() {
		var dim string
		var amount float64
		if err := costRows.Scan(&dim, &amount); err != nil {
			return domain.Skill{}, fmt.Errorf("scanning cost row: %w", err)
		}
		if s.Costs == nil {
			s.Costs = map[string]float64{}
		}
		s.Costs[dim] = amount
	}
	if err := costRows.Err(); err != nil {
		return domain.Skill{}, fmt.Errorf("iterating cost rows: %w", err)
	}

	prereqRows, err := r.db.QueryContext(ctx,
		`SELECT prereq_id FROM skill_prereqs WHERE skill_id = ? ORDER BY prereq_id`, id)
	if err != nil {
		return domain.Skill{}, fmt.Errorf("loading prereqs for %s: %w", id, err)
	}
	defer prereqRows.Close()
	for prereqRows.Next() {
		var prereq string
		if err := prereqRows.Scan(&prereq); err != nil {
			return domain.Skill{}, fmt.Errorf("scanning prereq row: %w", err)
		}
		s.Prereqs = append(s.Prereqs, prereq)
	}
	if err := prereqRows.Err(); err != nil {
		return domain.Skill{}, fmt.Errorf("iterating prereq rows: %w", err)
	}

	return s, nil
}

func (r *SQLiteSkillRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting skills: %w", err)
	}
	return count, nil
}

func (r *SQLiteSkillRepo) loadAllCosts(ctx context.Context) (map[string]map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id, dimension, amount FROM skill_costs ORDER BY skill_id, dimension`)
	if err != nil {
		return nil, fmt.Errorf("loading costs: %w", err)
	}
	defer rows.Close()

	costs := map[string]map[string]float64{}
	for rows.Next() {
		var skillID, dim string
		var amount float64
		if err := rows.Scan(&skillID, &dim, &amount); err != nil {
			return nil, fmt.Errorf("scanning cost row: %w", err)
		}
		if costs[skillID] == nil {
			costs[skillID] = map[string]float64{}
		}
		costs[skillID][dim] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cost rows: %w", err)
	}
	return costs, nil
}

func (r *SQLiteSkillRepo) loadAllPrereqs(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id, prereq_id FROM skill_prereqs ORDER BY skill_id, prereq_id`)
	if err != nil {
		return nil, fmt.Errorf("loading prereqs: %w", err)
	}
	defer rows.Close()

	prereqs := map[string][]string{}
	for rows.Next() {
		var skillID, prereq string
		if err := rows.Scan(&skillID, &prereq); err != nil {
			return nil, fmt.Errorf("scanning prereq row: %w", err)
		}
		prereqs[skillID] = append(prereqs[skillID], prereq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prereq rows: %w", err)
	}
	return prereqs, nil
}

// scanSkill scans the fixed skill columns from *sql.Rows; costs and
// prereqs are attached by the caller.
func scanSkill(rows *sql.Rows) (domain.Skill, error) {
	var s domain.Skill
	var critical int
	if err := rows.Scan(&s.ID, &s.Name, &s.Value, &s.Demand, &critical); err != nil {
		return domain.Skill{}, fmt.Errorf("scanning skill row: %w", err)
	}
	s.Critical = intToBool(critical)
	return s, nil
}

func sortedDimensions(costs map[string]float64) []string {
	dims := make([]string, 0, len(costs))
	for dim := range costs {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}
