package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS skills (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		value    REAL NOT NULL CHECK(value >= 0),
		demand   REAL NOT NULL DEFAULT 0.7,
		critical INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS skill_costs (
		skill_id  TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		dimension TEXT NOT NULL,
		amount    REAL NOT NULL CHECK(amount >= 0),
		PRIMARY KEY (skill_id, dimension)
	)`,

	`CREATE TABLE IF NOT EXISTS skill_prereqs (
		skill_id  TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		prereq_id TEXT NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (skill_id, prereq_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_skill_prereqs_prereq ON skill_prereqs(prereq_id)`,

	`CREATE TABLE IF NOT EXISTS scenarios (
		name         TEXT PRIMARY KEY,
		probability  REAL NOT NULL CHECK(probability >= 0 AND probability <= 1),
		boost_factor REAL NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS scenario_skills (
		scenario TEXT NOT NULL REFERENCES scenarios(name) ON DELETE CASCADE,
		skill_id TEXT NOT NULL,
		kind     TEXT NOT NULL CHECK(kind IN ('boost','penalty')),
		PRIMARY KEY (scenario, skill_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		name     TEXT PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS profile_skills (
		profile  TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
		skill_id TEXT NOT NULL,
		PRIMARY KEY (profile, skill_id)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_runs (
		id            TEXT PRIMARY KEY,
		created_at    TEXT NOT NULL,
		goal          TEXT NOT NULL DEFAULT '',
		budget_json   TEXT NOT NULL,
		sequence_json TEXT NOT NULL,
		total_value   REAL NOT NULL,
		cost_json     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_runs_created ON plan_runs(created_at)`,

	// Add a user-facing label to saved runs
	`ALTER TABLE plan_runs ADD COLUMN label TEXT NOT NULL DEFAULT ''`,
}
