package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Statements are idempotent so Migrate can run
// on every open.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			streak INTEGER NOT NULL DEFAULT 0,
			last_active DATETIME,
			badges TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			skill TEXT NOT NULL,
			confidence INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			progress INTEGER NOT NULL DEFAULT 0,

			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			plan_id TEXT NOT NULL,
			milestone_idx INTEGER NOT NULL,
			milestone_title TEXT NOT NULL,
			day INTEGER NOT NULL,
			description TEXT NOT NULL,
			resource_link TEXT NOT NULL DEFAULT '',
			completed INTEGER NOT NULL DEFAULT 0,

			FOREIGN KEY(plan_id) REFERENCES plans(id)
		);`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts DATETIME NOT NULL,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL DEFAULT 0,
			error_message TEXT NOT NULL DEFAULT '',
			request_body TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plans_user_id ON plans(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_plan_id ON tasks(plan_id);`,
		`CREATE INDEX IF NOT EXISTS idx_llm_events_purpose ON llm_events(purpose);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
