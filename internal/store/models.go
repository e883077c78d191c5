package store

import "time"

// User holds cross-plan learner state. XP, level, streak, and badges are
// mutated only through the gamification paths.
type User struct {
	ID          string
	DisplayName string
	XP          int
	Level       int
	Streak      int
	LastActive  *time.Time
	Badges      []string
}

// HasBadge reports whether the user already holds the given badge tier.
func (u *User) HasBadge(tier string) bool {
	for _, b := range u.Badges {
		if b == tier {
			return true
		}
	}
	return false
}

// Plan is one generated learning journey for a skill.
type Plan struct {
	ID         string
	UserID     string
	Skill      string
	Confidence int
	CreatedAt  time.Time
	Progress   int
}

// Task is a single day's actionable item within a milestone. MilestoneIndex
// is the generation-order index of its milestone, fixed at creation; task
// identity is the uuid, never a position in a fetched snapshot.
type Task struct {
	ID             string
	PlanID         string
	MilestoneIndex int
	MilestoneTitle string
	Day            int
	Description    string
	ResourceLink   string
	Completed      bool
}
