package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PlanRepo provides access to the plans table.
type PlanRepo struct {
	db *sql.DB
}

// NewPlanRepo creates a PlanRepo over the given database.
func NewPlanRepo(db *sql.DB) *PlanRepo {
	return &PlanRepo{db: db}
}

// Insert writes a new plan record.
func (r *PlanRepo) Insert(ctx context.Context, p Plan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plans (id, user_id, skill, confidence, created_at, progress)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.UserID, p.Skill, p.Confidence, p.CreatedAt, p.Progress)
	if err != nil {
		return fmt.Errorf("plan insert: %w", err)
	}
	return nil
}

// Get returns the plan with the given id, or nil when absent.
func (r *PlanRepo) Get(ctx context.Context, id string) (*Plan, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, skill, confidence, created_at, progress
		FROM plans
		WHERE id = ?
	`, id)

	var p Plan
	if err := row.Scan(&p.ID, &p.UserID, &p.Skill, &p.Confidence, &p.CreatedAt, &p.Progress); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("plan get: %w", err)
	}
	return &p, nil
}

// ListByUser returns the user's plans in creation order.
func (r *PlanRepo) ListByUser(ctx context.Context, userID string) ([]Plan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, skill, confidence, created_at, progress
		FROM plans
		WHERE user_id = ?
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("plan list: %w", err)
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Skill, &p.Confidence, &p.CreatedAt, &p.Progress); err != nil {
			return nil, fmt.Errorf("plan scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan rows: %w", err)
	}
	return out, nil
}

// UpdateProgress persists a recomputed completion percentage.
func (r *PlanRepo) UpdateProgress(ctx context.Context, id string, progress int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE plans SET progress = ? WHERE id = ?`, progress, id)
	if err != nil {
		return fmt.Errorf("plan update progress: %w", err)
	}
	return nil
}

// Delete removes a plan record. Its tasks are deleted separately first.
func (r *PlanRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("plan delete: %w", err)
	}
	return nil
}
