package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteOutlookRepo implements OutlookRepo over a SQLite database.
type SQLiteOutlookRepo struct {
	db db.Querier
}

// NewSQLiteOutlookRepo creates a new SQLiteOutlookRepo.
func NewSQLiteOutlookRepo(q db.Querier) *SQLiteOutlookRepo {
	return &SQLiteOutlookRepo{db: q}
}

func (r *SQLiteOutlookRepo) ReplaceScenarios(ctx context.Context, scenarios []domain.Scenario) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenarios`); err != nil {
		return fmt.Errorf("clearing scenarios: %w", err)
	}

	for pos, sc := range scenarios {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO scenarios (name, probability, boost_factor, description, position) VALUES (?, ?, ?, ?, ?)`,
			sc.Name, sc.Probability, sc.BoostFactor, sc.Description, pos,
		)
		if err != nil {
			return fmt.Errorf("inserting scenario %s: %w", sc.Name, err)
		}
		if err := r.insertScenarioSkills(ctx, sc.Name, "boost", sc.Boosted); err != nil {
			return err
		}
		if err := r.insertScenarioSkills(ctx, sc.Name, "penalty", sc.Penalized); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteOutlookRepo) insertScenarioSkills(ctx context.Context, scenario, kind string, ids []string) error {
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO scenario_skills (scenario, skill_id, kind) VALUES (?, ?, ?)`,
			scenario, id, kind,
		)
		if err != nil {
			return fmt.Errorf("inserting scenario skill %s/%s: %w", scenario, id, err)
		}
	}
	return nil
}

func (r *SQLiteOutlookRepo) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, probability, boost_factor, description FROM scenarios ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []domain.Scenario
	for rows.Next() {
		var sc domain.Scenario
		if err := rows.Scan(&sc.Name, &sc.Probability, &sc.BoostFactor, &sc.Description); err != nil {
			return nil, fmt.Errorf("scanning scenario row: %w", err)
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}

	skillRows, err := r.db.QueryContext(ctx,
		`SELECT scenario, skill_id, kind FROM scenario_skills ORDER BY scenario, skill_id`)
	if err != nil {
		return nil, fmt.Errorf("loading scenario skills: %w", err)
	}
	defer skillRows.Close()

	boosted := map[string][]string{}
	penalized := map[string][]string{}
	for skillRows.Next() {
		var scenario, skillID, kind string
		if err := skillRows.Scan(&scenario, &skillID, &kind); err != nil {
			return nil, fmt.Errorf("scanning scenario skill row: %w", err)
		}
		if kind == "boost" {
			boosted[scenario] = append(boosted[scenario], skillID)
		} else {
			penalized[scenario] = append(penalized[scenario], skillID)
		}
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenario skill rows: %w", err)
	}

	for i := range scenarios {
		scenarios[i].Boosted = boosted[scenarios[i].Name]
		scenarios[i].Penalized = penalized[scenarios[i].Name]
	}
	return scenarios, nil
}

func (r *SQLiteOutlookRepo) ReplaceProfiles(ctx context.Context, profiles []domain.Profile) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("clearing profiles: %w", err)
	}

	for pos, p := range profiles {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO profiles (name, position) VALUES (?, ?)`, p.Name, pos)
		if err != nil {
			return fmt.Errorf("inserting profile %s: %w", p.Name, err)
		}
		for _, id := range p.SkillIDs {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO profile_skills (profile, skill_id) VALUES (?, ?)`, p.Name, id)
			if err != nil {
				return fmt.Errorf("inserting profile skill %s/%s: %w", p.Name, id, err)
			}
		}
	}
	return nil
}

func (r *SQLiteOutlookRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM profiles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.Name); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	skillRows, err := r.db.QueryContext(ctx,
		`SELECT profile, skill_id FROM profile_skills ORDER BY profile, skill_id`)
	if err != nil {
		return nil, fmt.Errorf("loading profile skills: %w", err)
	}
	defer skillRows.Close()

	skills := map[string][]string{}
	for skillRows.Next() {
		var profile, skillID string
		if err := skillRows.Scan(&profile, &skillID); err != nil {
			return nil, fmt.Errorf("scanning profile skill row: %w", err)
		}
		skills[profile] = append(skills[profile], skillID)
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile skill rows: %w", err)
	}

	for i := range profiles {
		profiles[i].SkillIDs = skills[profiles[i].Name]
	}
	return profiles, nil
}

func (r *SQLiteOutlookRepo) GetProfile(ctx context.Context, name string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name FROM profiles WHERE name = ?`, name)

	var p domain.Profile
	if err := row.Scan(&p.Name); err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, fmt.Errorf("profile %s not found", name)
		}
		return domain.Profile{}, fmt.Errorf("scanning profile: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT skill_id FROM profile_skills WHERE profile = ? ORDER BY skill_id`, name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("loading profile skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return domain.Profile{}, fmt.Errorf("scanning profile skill row: %w", err)
		}
		p.SkillIDs = append(p.SkillIDs, id)
	}
	if err := rows.Err(); err != nil {
		return domain.Profile{}, fmt.Errorf("iterating profile skill rows: %w", err)
	}
	return p, nil
}
