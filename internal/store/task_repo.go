package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TaskRepo provides access to the tasks table.
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo creates a TaskRepo over the given database.
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Insert writes a new task record.
func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, plan_id, milestone_idx, milestone_title, day, description, resource_link, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.PlanID, t.MilestoneIndex, t.MilestoneTitle, t.Day, t.Description, t.ResourceLink, boolToInt(t.Completed))
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

// Get returns the task with the given id, or nil when absent.
func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, plan_id, milestone_idx, milestone_title, day, description, resource_link, completed
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

// ListByPlan returns all tasks of a plan in stored milestone/day order.
func (r *TaskRepo) ListByPlan(ctx context.Context, planID string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, plan_id, milestone_idx, milestone_title, day, description, resource_link, completed
		FROM tasks
		WHERE plan_id = ?
		ORDER BY milestone_idx ASC, day ASC
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

// SetCompleted flips the completion flag of one task.
func (r *TaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

// Delete removes a single task record.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

// DeleteByPlan removes all tasks of a plan.
func (r *TaskRepo) DeleteByPlan(ctx context.Context, planID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE plan_id = ?`, planID)
	if err != nil {
		return fmt.Errorf("task delete by plan: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		t         Task
		completed int
	)
	if err := row.Scan(&t.ID, &t.PlanID, &t.MilestoneIndex, &t.MilestoneTitle, &t.Day, &t.Description, &t.ResourceLink, &completed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.Completed = completed != 0
	return &t, nil
}
