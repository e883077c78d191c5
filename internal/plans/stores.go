package plans

import (
	"context"
	"time"

	"github.com/skillsprint/skillsprint/internal/store"
)

// UserStore is the slice of user persistence the service needs.
// *store.UserRepo satisfies it.
type UserStore interface {
	GetOrCreate(ctx context.Context, id, displayName string) (*store.User, error)
	UpdateStreak(ctx context.Context, id string, streak int, lastActive time.Time) error
	UpdateStats(ctx context.Context, id string, xp, level int, badges []string) error
}

// PlanStore is the slice of plan persistence the service needs.
// *store.PlanRepo satisfies it.
type PlanStore interface {
	Insert(ctx context.Context, p store.Plan) error
	Get(ctx context.Context, id string) (*store.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]store.Plan, error)
	UpdateProgress(ctx context.Context, id string, progress int) error
	Delete(ctx context.Context, id string) error
}

// TaskStore is the slice of task persistence the service needs.
// *store.TaskRepo satisfies it.
type TaskStore interface {
	Insert(ctx context.Context, t store.Task) error
	ListByPlan(ctx context.Context, planID string) ([]store.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	DeleteByPlan(ctx context.Context, planID string) error
}
