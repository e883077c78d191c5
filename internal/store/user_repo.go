package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// UserRepo provides access to the users table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a UserRepo over the given database.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get returns the user with the given id, or nil when absent.
func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, xp, level, streak, last_active, badges
		FROM users
		WHERE id = ?
	`, id)
	return scanUser(row)
}

// GetOrCreate returns the user with the given id, creating a fresh record
// when none exists yet.
func (r *UserRepo) GetOrCreate(ctx context.Context, id, displayName string) (*User, error) {
	u, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, display_name, xp, level, streak)
		VALUES (?, ?, 0, 1, 0)
	`, id, displayName); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, id)
}

// UpdateStreak persists a new streak count and last-active instant.
func (r *UserRepo) UpdateStreak(ctx context.Context, id string, streak int, lastActive time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET streak = ?, last_active = ? WHERE id = ?
	`, streak, lastActive, id)
	if err != nil {
		return fmt.Errorf("user update streak: %w", err)
	}
	return nil
}

// UpdateStats persists XP, level, and badges after a ledger run.
func (r *UserRepo) UpdateStats(ctx context.Context, id string, xp, level int, badges []string) error {
	badgesJSON, err := marshalBadges(badges)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE users SET xp = ?, level = ?, badges = ? WHERE id = ?
	`, xp, level, badgesJSON, id)
	if err != nil {
		return fmt.Errorf("user update stats: %w", err)
	}
	return nil
}

func marshalBadges(badges []string) (*string, error) {
	if len(badges) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(badges)
	if err != nil {
		return nil, fmt.Errorf("marshal badges: %w", err)
	}
	s := string(data)
	return &s, nil
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u          User
		lastActive sql.NullTime
		badgesRaw  sql.NullString
	)
	if err := row.Scan(&u.ID, &u.DisplayName, &u.XP, &u.Level, &u.Streak, &lastActive, &badgesRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}

	if lastActive.Valid {
		t := lastActive.Time
		u.LastActive = &t
	}
	if badgesRaw.Valid && badgesRaw.String != "" {
		if err := json.Unmarshal([]byte(badgesRaw.String), &u.Badges); err != nil {
			return nil, fmt.Errorf("unmarshal badges: %w", err)
		}
	}
	return &u, nil
}
